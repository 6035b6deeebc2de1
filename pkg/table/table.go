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
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrEmpty is returned when the input holds no header row
	ErrEmpty = errors.Base("table has no header row")

	// ErrMalformed wraps every csv syntax error
	ErrMalformed = errors.Base("malformed table")

	// ErrColumnNotFound is returned when a header lookup fails
	ErrColumnNotFound = errors.Base("column not found")

	// ErrShortRow is returned when a data row has no field at the moved column's index
	ErrShortRow = errors.Base("row too short")
)

// kindError tags err with one of the package sentinels so both match errors.Is
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.err.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// 📋 Table is a header row followed by data rows.
// Rows are not required to match the header length.
type Table struct {
	Header []string
	Rows   [][]string
}

// 📖 Parse reads a whole comma-separated document.
// Carriage returns inside quoted fields are kept as is.
func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Errorf("reading table: %w", err)
	}

	data, marker := protectQuotedCR(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WithStack(&kindError{kind: ErrMalformed, err: err})
	}
	if len(records) == 0 {
		return nil, errors.WithStack(ErrEmpty)
	}

	if marker != "" {
		for _, rec := range records {
			for i, field := range rec {
				rec[i] = strings.ReplaceAll(field, marker, "\r")
			}
		}
	}

	return &Table{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

// protectQuotedCR swaps every \r inside a quoted field for a rune absent from data,
// since csv.Reader folds \r\n to \n there. The marker is empty when nothing was swapped.
func protectQuotedCR(data []byte) ([]byte, string) {
	if bytes.IndexByte(data, '\r') < 0 {
		return data, ""
	}

	marker := ""
	for r := rune(0xE000); r <= 0xF8FF; r++ {
		if !bytes.ContainsRune(data, r) {
			marker = string(r)
			break
		}
	}
	if marker == "" {
		return data, ""
	}

	out := make([]byte, 0, len(data)+16*utf8.UTFMax)
	swapped := false
	inQuotes := false
	fieldStart := true
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inQuotes {
			switch {
			case c == '"' && i+1 < len(data) && data[i+1] == '"':
				out = append(out, '"', '"')
				i++
			case c == '"':
				inQuotes = false
				out = append(out, c)
			case c == '\r':
				out = append(out, marker...)
				swapped = true
			default:
				out = append(out, c)
			}
			continue
		}

		if c == '"' && fieldStart {
			inQuotes = true
		}
		fieldStart = c == ',' || c == '\n' || c == '\r'
		out = append(out, c)
	}

	if !swapped {
		return data, ""
	}
	return out, marker
}

// 📖 ParseBytes is Parse over an in-memory document
func ParseBytes(data []byte) (*Table, error) {
	return Parse(bytes.NewReader(data))
}

// ✍️ Write serializes the table. Every record, including the last, ends with a newline.
func (t *Table) Write(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writeRecord(writer, w, t.Header); err != nil {
		return errors.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		if err := writeRecord(writer, w, row); err != nil {
			return errors.Errorf("writing row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Errorf("flushing table: %w", err)
	}
	return nil
}

// writeRecord writes rec, quoting a lone empty field so it does not become a blank line,
// which readers skip
func writeRecord(writer *csv.Writer, w io.Writer, rec []string) error {
	if len(rec) != 1 || rec[0] != "" {
		return writer.Write(rec)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}

// 📦 Bytes returns the serialized table
func (t *Table) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// 🔍 ColumnIndex returns the 0-based index of the first header field equal to name, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy
func (t *Table) Clone() *Table {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return &Table{
		Header: append([]string(nil), t.Header...),
		Rows:   rows,
	}
}
