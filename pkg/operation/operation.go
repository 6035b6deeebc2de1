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
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Kind selects which layout change an Operation performs
type Kind int

const (
	KindUnknown Kind = iota
	KindInsert       // Add a new column with a default value
	KindReorder      // Move an existing column
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindReorder:
		return "reorder"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name back to a Kind, case-insensitively
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "insert":
		return KindInsert, nil
	case "reorder":
		return KindReorder, nil
	default:
		return KindUnknown, errors.Errorf("unknown operation kind %q", s)
	}
}

// 📦 Operation is one layout change shared read-only by every file of a run.
// DefaultValue is only meaningful for KindInsert.
type Operation struct {
	Kind         Kind
	Column       string
	DefaultValue string
	// Order is the 1-based target position counted on the header before the change
	Order int
}

// ➕ Insert builds an operation adding column with value in every data row at order
func Insert(column, defaultValue string, order int) Operation {
	return Operation{
		Kind:         KindInsert,
		Column:       column,
		DefaultValue: defaultValue,
		Order:        order,
	}
}

// 🔀 Reorder builds an operation moving column to order
func Reorder(column string, order int) Operation {
	return Operation{
		Kind:   KindReorder,
		Column: column,
		Order:  order,
	}
}

// 🔍 Validate checks the operation is complete before any file is touched
func (op Operation) Validate() error {
	if op.Kind != KindInsert && op.Kind != KindReorder {
		return errors.Errorf("unknown operation kind %d", op.Kind)
	}
	if op.Column == "" {
		return errors.Errorf("column is required")
	}
	if op.Order < 1 {
		return errors.Errorf("order must be 1 or greater, got %d", op.Order)
	}
	return nil
}

// 📝 String describes the operation for the console
func (op Operation) String() string {
	switch op.Kind {
	case KindInsert:
		return fmt.Sprintf("Inserting %s with default value %s @ %d", op.Column, op.DefaultValue, op.Order)
	case KindReorder:
		return fmt.Sprintf("Moving %s to position %d", op.Column, op.Order)
	default:
		return "Unknown operation"
	}
}
