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
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderPreview draws the header before and after a planned change as a table,
// one column per position
func renderPreview(before, after []string) string {
	width := len(before)
	if len(after) > width {
		width = len(after)
	}

	positions := make([]string, 0, width+1)
	positions = append(positions, "")
	for i := 1; i <= width; i++ {
		positions = append(positions, strconv.Itoa(i))
	}

	data := pterm.TableData{
		positions,
		previewRow("before", before, width),
		previewRow("after", after, width),
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "before: " + strings.Join(before, ",") + "\nafter:  " + strings.Join(after, ",")
	}
	return out
}

func previewRow(label string, fields []string, width int) []string {
	row := make([]string, width+1)
	row[0] = label
	copy(row[1:], fields)
	return row
}

// headerDiffs diffs the comma-joined headers
func headerDiffs(before, after []string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	return dmp.DiffMain(strings.Join(before, ","), strings.Join(after, ","), false)
}

// headerDelta encodes the header change as a diffmatchpatch delta, empty when nothing changed
func headerDelta(before, after []string) string {
	diffs := headerDiffs(before, after)
	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		return ""
	}
	return diffmatchpatch.New().DiffToDelta(diffs)
}

// renderHeaderDiff marks removed text as [-x-] and added text as {+x+}
func renderHeaderDiff(before, after []string) string {
	var sb strings.Builder
	for _, d := range headerDiffs(before, after) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(color.GreenString("{+%s+}", d.Text))
		case diffmatchpatch.DiffDelete:
			sb.WriteString(color.RedString("[-%s-]", d.Text))
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
