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
	"github.com/walteh/colshift/pkg/locate"
	"github.com/walteh/colshift/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📢 Reporter receives progress while a run is going
type Reporter interface {
	// Start is called once the file set is known
	Start(ctx context.Context, op Operation, total int)
	// File is called after each file, successful or not
	File(ctx context.Context, res Result)
	// Finish is called once with the final summary and the run error, if any
	Finish(ctx context.Context, summary Summary, err error)
}

// 📊 Summary counts what happened during a run
type Summary struct {
	Total     int
	Modified  int
	Unchanged int
	Planned   int
	Failed    int
	Results   []Result
}

func (s *Summary) add(res Result) {
	s.Results = append(s.Results, res)
	switch res.Status {
	case status.StatusModified:
		s.Modified++
	case status.StatusUnchanged:
		s.Unchanged++
	case status.StatusPlanned:
		s.Planned++
	case status.StatusFailed:
		s.Failed++
	}
}

// 🔧 RunnerOptions configures a Runner
type RunnerOptions struct {
	Apply ApplyOptions
	// ContinueOnError attempts every file instead of stopping at the first failure
	ContinueOnError bool
}

// 🏃 Runner applies one operation to a file set, strictly one file at a time
type Runner struct {
	opts     RunnerOptions
	reporter Reporter
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts RunnerOptions, reporter Reporter) *Runner {
	return &Runner{
		opts:     opts,
		reporter: reporter,
	}
}

// 📂 RunDir locates the files under root and runs op over them
func (r *Runner) RunDir(ctx context.Context, op Operation, root string, lopts locate.Options) (Summary, error) {
	files, err := locate.Files(ctx, root, lopts)
	if err != nil {
		err = fileError(ErrIO, root, err)
		r.reporter.Finish(ctx, Summary{}, err)
		return Summary{}, err
	}
	return r.Run(ctx, op, files)
}

// 🏃 Run applies op to every file in order
func (r *Runner) Run(ctx context.Context, op Operation, files []string) (Summary, error) {
	logger := zerolog.Ctx(ctx)
	summary := Summary{Total: len(files)}

	r.reporter.Start(ctx, op, len(files))

	var firstErr error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			runErr := errors.Errorf("run cancelled: %w", err)
			r.reporter.Finish(ctx, summary, runErr)
			return summary, runErr
		}

		res, err := Apply(ctx, file, op, r.opts.Apply)
		summary.add(res)
		r.reporter.File(ctx, res)

		if err == nil {
			continue
		}

		if !r.opts.ContinueOnError {
			runErr := errors.Errorf("migrating %s: %w", file, err)
			r.reporter.Finish(ctx, summary, runErr)
			return summary, runErr
		}

		logger.Debug().Err(err).Str("path", file).Msg("continuing after failure")
		if firstErr == nil {
			firstErr = err
		}
	}

	var runErr error
	if firstErr != nil {
		runErr = errors.Errorf("%d of %d files failed, first: %w", summary.Failed, summary.Total, firstErr)
	}

	r.reporter.Finish(ctx, summary, runErr)
	return summary, runErr
}
