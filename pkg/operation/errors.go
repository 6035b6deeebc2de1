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

	"gitlab.com/tozd/go/errors"
)

// Error kinds, matched with errors.Is
var (
	// ErrIO covers unreadable directories and unreadable or unwritable files
	ErrIO = errors.Base("io error")

	// ErrSchema covers a missing header, a missing column and rows too short to reorder
	ErrSchema = errors.Base("schema error")

	// ErrParse covers malformed comma-separated content
	ErrParse = errors.Base("parse error")
)

// ❌ Error is a failure to migrate one file
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func fileError(kind error, path string, err error) error {
	return errors.WithStack(&Error{Kind: kind, Path: path, Err: err})
}
