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

package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Table {
	return &Table{
		Header: []string{"H1", "H2", "H3"},
		Rows: [][]string{
			{"V1", "V2", "V3"},
			{"V11", "V22", "V33"},
		},
	}
}

func TestInsertColumn(t *testing.T) {
	tests := []struct {
		name        string
		in          *Table
		order       int
		wantHeader  []string
		wantRows    [][]string
		wantDropped bool
	}{
		{
			name:       "insert_in_middle",
			in:         sample(),
			order:      2,
			wantHeader: []string{"H1", "X", "H2", "H3"},
			wantRows: [][]string{
				{"V1", "D", "V2", "V3"},
				{"V11", "D", "V22", "V33"},
			},
		},
		{
			name:       "insert_first",
			in:         sample(),
			order:      1,
			wantHeader: []string{"X", "H1", "H2", "H3"},
			wantRows: [][]string{
				{"D", "V1", "V2", "V3"},
				{"D", "V11", "V22", "V33"},
			},
		},
		{
			name:       "insert_before_last",
			in:         sample(),
			order:      3,
			wantHeader: []string{"H1", "H2", "X", "H3"},
			wantRows: [][]string{
				{"V1", "V2", "D", "V3"},
				{"V11", "V22", "D", "V33"},
			},
		},
		{
			name:        "order_past_header_end_drops_column",
			in:          sample(),
			order:       4,
			wantHeader:  []string{"H1", "H2", "H3"},
			wantRows:    [][]string{{"V1", "V2", "V3"}, {"V11", "V22", "V33"}},
			wantDropped: true,
		},
		{
			name:        "non_positive_order_drops_column",
			in:          sample(),
			order:       0,
			wantHeader:  []string{"H1", "H2", "H3"},
			wantRows:    [][]string{{"V1", "V2", "V3"}, {"V11", "V22", "V33"}},
			wantDropped: true,
		},
		{
			name: "short_and_long_rows_are_positional",
			in: &Table{
				Header: []string{"H1", "H2", "H3"},
				Rows: [][]string{
					{"V1"},
					{"V1", "V2", "V3", "V4"},
				},
			},
			order:      3,
			wantHeader: []string{"H1", "H2", "X", "H3"},
			wantRows: [][]string{
				{"V1"},
				{"V1", "V2", "D", "V3", "V4"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.Clone()

			out, dropped := InsertColumn(tt.in, "X", "D", tt.order)

			assert.Equal(t, tt.wantHeader, out.Header, "header should match")
			assert.Equal(t, tt.wantRows, out.Rows, "rows should match")
			assert.Equal(t, tt.wantDropped, dropped, "dropped flag should match")
			assert.Equal(t, before, tt.in, "input table should not be mutated")
		})
	}
}

func TestMoveColumn(t *testing.T) {
	tests := []struct {
		name       string
		in         *Table
		column     string
		order      int
		wantHeader []string
		wantRows   [][]string
		wantMoved  bool
		wantErr    error
	}{
		{
			name:       "move_last_to_first",
			in:         sample(),
			column:     "H3",
			order:      1,
			wantHeader: []string{"H3", "H1", "H2"},
			wantRows: [][]string{
				{"V3", "V1", "V2"},
				{"V33", "V11", "V22"},
			},
			wantMoved: true,
		},
		{
			name:       "move_first_to_middle",
			in:         sample(),
			column:     "H1",
			order:      2,
			wantHeader: []string{"H2", "H1", "H3"},
			wantRows: [][]string{
				{"V2", "V1", "V3"},
				{"V22", "V11", "V33"},
			},
			wantMoved: true,
		},
		{
			name:       "move_first_to_last",
			in:         sample(),
			column:     "H1",
			order:      3,
			wantHeader: []string{"H2", "H3", "H1"},
			wantRows: [][]string{
				{"V2", "V3", "V1"},
				{"V22", "V33", "V11"},
			},
			wantMoved: true,
		},
		{
			name:       "order_past_end_appends",
			in:         sample(),
			column:     "H1",
			order:      10,
			wantHeader: []string{"H2", "H3", "H1"},
			wantRows: [][]string{
				{"V2", "V3", "V1"},
				{"V22", "V33", "V11"},
			},
			wantMoved: true,
		},
		{
			name:       "negative_order_prepends",
			in:         sample(),
			column:     "H2",
			order:      -3,
			wantHeader: []string{"H2", "H1", "H3"},
			wantRows: [][]string{
				{"V2", "V1", "V3"},
				{"V22", "V11", "V33"},
			},
			wantMoved: true,
		},
		{
			name:       "already_in_place",
			in:         sample(),
			column:     "H2",
			order:      2,
			wantHeader: []string{"H1", "H2", "H3"},
			wantRows:   [][]string{{"V1", "V2", "V3"}, {"V11", "V22", "V33"}},
		},
		{
			name: "first_match_wins_for_duplicate_names",
			in: &Table{
				Header: []string{"A", "B", "A"},
				Rows:   [][]string{{"1", "2", "3"}},
			},
			column:     "A",
			order:      3,
			wantHeader: []string{"B", "A", "A"},
			wantRows:   [][]string{{"2", "3", "1"}},
			wantMoved:  true,
		},
		{
			name:    "missing_column",
			in:      sample(),
			column:  "h3",
			order:   1,
			wantErr: ErrColumnNotFound,
		},
		{
			name: "row_shorter_than_column_index",
			in: &Table{
				Header: []string{"H1", "H2", "H3"},
				Rows:   [][]string{{"V1", "V2", "V3"}, {"V1"}},
			},
			column:  "H3",
			order:   1,
			wantErr: ErrShortRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.Clone()

			out, moved, err := MoveColumn(tt.in, tt.column, tt.order)
			if tt.wantErr != nil {
				require.Error(t, err, "MoveColumn should fail")
				assert.True(t, errors.Is(err, tt.wantErr), "error should be %v, got %v", tt.wantErr, err)
				assert.Nil(t, out, "no table should be returned on error")
				return
			}

			require.NoError(t, err, "MoveColumn should succeed")
			assert.Equal(t, tt.wantHeader, out.Header, "header should match")
			assert.Equal(t, tt.wantRows, out.Rows, "rows should match")
			assert.Equal(t, tt.wantMoved, moved, "moved flag should match")
			assert.Equal(t, before, tt.in, "input table should not be mutated")
		})
	}
}

func TestColumnIndex(t *testing.T) {
	tbl := &Table{Header: []string{"a", "b", "a"}}

	assert.Equal(t, 0, tbl.ColumnIndex("a"), "first match should win")
	assert.Equal(t, 1, tbl.ColumnIndex("b"), "b should be found")
	assert.Equal(t, -1, tbl.ColumnIndex("A"), "lookup should be case sensitive")
}
