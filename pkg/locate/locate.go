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

// Package locate finds table files under a directory tree
package locate

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtension is used when Options.Extension is empty
const DefaultExtension = "csv"

// 🔧 Options narrows which files are returned
type Options struct {
	// Extension is matched case-insensitively, with or without a leading dot
	Extension string
	// Exclude holds doublestar patterns matched against slash-separated paths relative to the root
	Exclude []string
}

// 🔍 Files walks root depth-first and returns every file carrying the extension.
//
// Results follow directory read order and are not deduplicated. Directories are never
// returned and symlinks are not followed. Any unreadable directory fails the whole call.
func Files(ctx context.Context, root string, opts Options) ([]string, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	l := &locator{
		root:    root,
		ext:     normalizeExtension(opts.Extension),
		exclude: opts.Exclude,
		logger:  zerolog.Ctx(ctx),
	}

	files, err := l.walk(root)
	if err != nil {
		return nil, err
	}

	l.logger.Debug().Str("root", root).Str("extension", l.ext).Int("count", len(files)).Msg("located files")
	return files, nil
}

type locator struct {
	root    string
	ext     string
	exclude []string
	logger  *zerolog.Logger
}

func (l *locator) walk(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if l.excluded(path) {
			l.logger.Debug().Str("path", path).Msg("excluded by pattern")
			continue
		}

		if entry.IsDir() {
			nested, err := l.walk(path)
			if err != nil {
				return nil, err
			}
			files = append(files, nested...)
			continue
		}

		// a link to a directory is neither descended nor returned
		if entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				continue
			}
		}

		if strings.EqualFold(strings.TrimPrefix(filepath.Ext(entry.Name()), "."), l.ext) {
			files = append(files, path)
		}
	}

	return files, nil
}

func (l *locator) excluded(path string) bool {
	if len(l.exclude) == 0 {
		return false
	}

	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range l.exclude {
		// patterns were validated up front, so Match cannot fail here
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func normalizeExtension(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return DefaultExtension
	}
	return ext
}
