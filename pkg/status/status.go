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

// 📊 FileStatus is the outcome of migrating one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // File was rewritten with a new layout
	StatusUnchanged            // Column already in place, file re-emitted as is
	StatusPlanned              // Dry run, nothing written
	StatusFailed               // File could not be migrated
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusPlanned:
		return "planned"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
