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

package log

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/colshift/pkg/operation"
	"github.com/walteh/colshift/pkg/status"
)

var _ operation.Reporter = (*Logger)(nil)

// 🎯 Logger prints human progress to the console and mirrors it to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex

	total     int
	processed int
}

// 🏭 New creates a new logger writing structured logs to zlog and progress lines to console
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or a logger discarding everything
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(io.Discard, zerolog.Nop())
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 Start prints the operation banner
func (l *Logger) Start(ctx context.Context, op operation.Operation, total int) {
	l.mu.Lock()
	l.total = total
	l.processed = 0
	l.mu.Unlock()

	l.Header(op.String())
	l.Infof("found %d file(s)", total)
}

// 📝 File prints the outcome of one file
func (l *Logger) File(ctx context.Context, res operation.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.processed++

	path := res.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	fmt.Fprintln(l.console, l.formatter.FormatFile(path, res.Status, res.Note()))
	if res.Status == status.StatusPlanned {
		fmt.Fprintln(l.console, renderPreview(res.HeaderBefore, res.HeaderAfter))
		fmt.Fprintf(l.console, "header: %s\n\n", renderHeaderDiff(res.HeaderBefore, res.HeaderAfter))
	}

	event := l.zlog.Info()
	switch {
	case res.Err != nil:
		event = l.zlog.Error().Err(res.Err)
	case res.Dropped:
		event = l.zlog.Warn()
	}
	event.
		Str("file", path).
		Str("status", res.Status.String()).
		Bool("dropped", res.Dropped).
		Str("header_delta", headerDelta(res.HeaderBefore, res.HeaderAfter)).
		Int("processed", l.processed).
		Int("total", l.total).
		Msg(l.formatter.FormatProgress(l.processed, l.total))
}

// 📝 Finish prints the final status line
func (l *Logger) Finish(ctx context.Context, summary operation.Summary, err error) {
	l.LogNewline()

	dropped := 0
	for _, res := range summary.Results {
		if res.Dropped {
			dropped++
		}
	}
	if dropped > 0 {
		l.Warningf("%d file(s) kept their header, the insert position was outside it", dropped)
	}

	if err != nil {
		if summary.Failed > 0 {
			l.Errorf("%d of %d file(s) failed", summary.Failed, summary.Total)
		}
		l.Error("Migration failed")
		l.zlog.Debug().Err(err).Msg(l.formatter.FormatError(err))
		return
	}

	switch {
	case summary.Planned > 0:
		l.Successf("Dry run complete (%d planned)", summary.Planned)
	default:
		l.Successf("Migration complete (%d modified, %d unchanged)", summary.Modified, summary.Unchanged)
	}
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("colshift")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Plain prints msg as is, for machine-friendly output such as file listings
func (l *Logger) Plain(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
