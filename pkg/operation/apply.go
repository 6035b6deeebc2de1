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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/colshift/pkg/status"
	"github.com/walteh/colshift/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// 🔧 ApplyOptions controls how a migrated file is written
type ApplyOptions struct {
	// Atomic replaces files through a temp file and rename
	Atomic bool
	// Backup keeps a <path>.bak copy of every rewritten file
	Backup bool
	// DryRun computes the new layout without writing anything
	DryRun bool
}

// 📄 Result is the outcome of migrating one file
type Result struct {
	Path   string
	Status status.FileStatus
	// Dropped is set when an insert position was outside the header, leaving the header unchanged
	Dropped      bool
	HeaderBefore []string
	HeaderAfter  []string
	Err          error
}

// Note is a short human explanation of the result, empty when there is nothing to add
func (r Result) Note() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.Dropped:
		return "position outside header, column not added to header"
	case r.Status == status.StatusUnchanged:
		return "column already in place"
	default:
		return ""
	}
}

// 🏃 Apply migrates one file in place. Nothing is written unless the whole table was
// read, parsed and transformed successfully.
func Apply(ctx context.Context, path string, op Operation, opts ApplyOptions) (Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Str("kind", op.Kind.String()).Logger()
	res := Result{Path: path, Status: status.StatusFailed}

	fail := func(kind error, err error) (Result, error) {
		res.Err = fileError(kind, path, err)
		logger.Debug().Err(res.Err).Msg("migration failed")
		return res, res.Err
	}

	writer := status.NewWriter(status.WriterOptions{Atomic: opts.Atomic, Backup: opts.Backup})

	content, err := writer.ReadFile(ctx, path)
	if err != nil {
		return fail(ErrIO, err)
	}

	tbl, err := table.ParseBytes(content)
	if err != nil {
		if errors.Is(err, table.ErrEmpty) {
			return fail(ErrSchema, err)
		}
		return fail(ErrParse, err)
	}
	res.HeaderBefore = tbl.Header

	var out *table.Table
	fileStatus := status.StatusModified

	switch op.Kind {
	case KindInsert:
		out, res.Dropped = table.InsertColumn(tbl, op.Column, op.DefaultValue, op.Order)
		if res.Dropped {
			logger.Warn().Int("order", op.Order).Int("columns", len(tbl.Header)).Msg("insert position outside header")
		}
	case KindReorder:
		var moved bool
		out, moved, err = table.MoveColumn(tbl, op.Column, op.Order)
		if err != nil {
			return fail(ErrSchema, err)
		}
		if !moved {
			fileStatus = status.StatusUnchanged
		}
	default:
		return fail(ErrSchema, errors.Errorf("unknown operation kind %d", op.Kind))
	}
	res.HeaderAfter = out.Header

	data, err := out.Bytes()
	if err != nil {
		return fail(ErrIO, errors.Errorf("serializing table: %w", err))
	}

	if opts.DryRun {
		res.Status = status.StatusPlanned
		logger.Debug().Strs("header", out.Header).Msg("dry run, not writing")
		return res, nil
	}

	if err := writer.WriteFile(ctx, path, data); err != nil {
		return fail(ErrIO, err)
	}

	res.Status = fileStatus
	logger.Debug().Str("status", fileStatus.String()).Int("rows", len(out.Rows)).Msg("file migrated")
	return res, nil
}
