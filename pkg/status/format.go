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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	statusWidth = 10 // Width for status text
)

// FileFormatter defines how per-file results and progress are rendered
type FileFormatter interface {
	// FormatFile formats the outcome of one file
	FormatFile(path string, s FileStatus, note string) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter renders colored, aligned lines
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFile formats one file result, e.g. "    ⟳ modified   data/a.csv (note)"
func (f *DefaultFileFormatter) FormatFile(path string, s FileStatus, note string) string {
	var prefix string
	switch s {
	case StatusModified:
		prefix = color.GreenString("⟳")
	case StatusUnchanged:
		prefix = color.HiBlackString("-")
	case StatusPlanned:
		prefix = color.CyanString("…")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("?")
	}

	line := fmt.Sprintf("%s%s %-*s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		statusWidth, s.String(),
		path,
	)
	if note != "" {
		line += " " + color.New(color.Faint).Sprintf("(%s)", note)
	}
	return line
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
