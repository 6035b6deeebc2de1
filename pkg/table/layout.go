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
	"gitlab.com/tozd/go/errors"
)

// ➕ InsertColumn returns a copy of t with name injected into the header and value into every
// data row, immediately before the field at the 1-based position order.
//
// Each row is walked independently: a row with no field at order-1 is left as is. When that
// happens to the header, dropped is true and the new column is absent from the header.
func InsertColumn(t *Table, name, value string, order int) (out *Table, dropped bool) {
	idx := order - 1

	out = &Table{
		Header: insertBefore(t.Header, idx, name),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = insertBefore(row, idx, value)
	}

	return out, len(out.Header) == len(t.Header)
}

// 🔀 MoveColumn returns a copy of t with the first column named name moved to the 1-based
// position order. moved is false when the column already sits at that position, in which case
// out is an unchanged copy.
//
// Every data row must have a field at the column's header index; the same positional move is
// applied to each row.
func MoveColumn(t *Table, name string, order int) (out *Table, moved bool, err error) {
	from := t.ColumnIndex(name)
	if from < 0 {
		return nil, false, errors.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	to := order - 1
	if from == to {
		return t.Clone(), false, nil
	}

	out = &Table{
		Header: moveField(t.Header, from, to),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		if len(row) <= from {
			// +2: one for the header row, one for 1-based line numbers
			return nil, false, errors.Errorf("%w: record %d has %d fields, column %q is field %d",
				ErrShortRow, i+2, len(row), name, from+1)
		}
		out.Rows[i] = moveField(row, from, to)
	}

	return out, true, nil
}

// insertBefore copies row, emitting v just before the field at idx. Out of range idx emits nothing.
func insertBefore(row []string, idx int, v string) []string {
	res := make([]string, 0, len(row)+1)
	for i, field := range row {
		if i == idx {
			res = append(res, v)
		}
		res = append(res, field)
	}
	return res
}

// moveField removes row[from] and reinserts it before index to of the reduced row, clamping to
// the reduced row's bounds
func moveField(row []string, from, to int) []string {
	v := row[from]

	reduced := make([]string, 0, len(row))
	reduced = append(reduced, row[:from]...)
	reduced = append(reduced, row[from+1:]...)

	switch {
	case to < 0:
		to = 0
	case to > len(reduced):
		to = len(reduced)
	}

	res := make([]string, 0, len(row))
	res = append(res, reduced[:to]...)
	res = append(res, v)
	res = append(res, reduced[to:]...)
	return res
}
