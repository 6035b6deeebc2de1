// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// BackupSuffix is appended to a file's path to name its backup copy
const BackupSuffix = ".bak"

// 🔧 WriterOptions controls how files are replaced
type WriterOptions struct {
	// Atomic writes to a temp file in the same directory and renames it over the target
	Atomic bool
	// Backup copies the current content to <path>.bak before replacing it
	Backup bool
}

// 💾 Writer replaces file content on disk
type Writer struct {
	opts WriterOptions
}

// 🏭 NewWriter creates a new writer
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{opts: opts}
}

// ReadFile reads the whole file
func (w *Writer) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// ✍️ WriteFile replaces the content of an existing file, keeping its mode
func (w *Writer) WriteFile(ctx context.Context, path string, content []byte) error {
	logger := zerolog.Ctx(ctx)

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking file: %w", err)
	}

	if w.opts.Backup {
		if err := BackupFile(ctx, path); err != nil {
			return errors.Errorf("backing up file: %w", err)
		}
	}

	if !w.opts.Atomic {
		logger.Debug().Str("path", path).Msg("overwriting file in place")
		if err := os.WriteFile(path, content, mode); err != nil {
			if w.opts.Backup {
				if rerr := RestoreFile(ctx, path); rerr != nil {
					logger.Error().Err(rerr).Str("path", path).Msg("restoring backup after failed write")
				}
			}
			return errors.Errorf("writing file: %w", err)
		}
		return nil
	}

	logger.Debug().Str("path", path).Msg("writing file atomically")
	return WriteFileAtomic(path, content, mode)
}

// ⚛️ WriteFileAtomic writes content to a temp file next to path and renames it into place.
// On failure the temp file is removed and path is untouched.
func WriteFileAtomic(path string, content []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		cleanup()
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 📦 BackupFile copies path to path+BackupSuffix, replacing any earlier backup.
// A missing source is not an error.
func BackupFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Errorf("checking file existence: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("creating backup")

	if err := copyFile(path, path+BackupSuffix); err != nil {
		return errors.Errorf("creating backup: %w", err)
	}
	return nil
}

// ♻️ RestoreFile puts a backup back in place and removes it
func RestoreFile(ctx context.Context, path string) error {
	backupPath := path + BackupSuffix

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.Errorf("backup file does not exist")
	} else if err != nil {
		return errors.Errorf("checking backup existence: %w", err)
	}

	if err := copyFile(backupPath, path); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	if err := os.Remove(backupPath); err != nil {
		return errors.Errorf("removing backup: %w", err)
	}

	return nil
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		return errors.Errorf("copying file: %w", err)
	}

	if err := destination.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}

	return nil
}
