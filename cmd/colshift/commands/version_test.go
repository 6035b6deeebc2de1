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

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfoString(t *testing.T) {
	tests := []struct {
		name string
		info buildInfo
		want string
	}{
		{
			name: "release",
			info: buildInfo{module: "github.com/walteh/colshift", version: "v1.2.0", revision: "0123456789abcdef", goVersion: "go1.23.5"},
			want: "colshift v1.2.0 (0123456789ab)",
		},
		{
			name: "dirty_checkout",
			info: buildInfo{module: "github.com/walteh/colshift", version: "dev", revision: "abc", dirty: true, goVersion: "go1.23.5"},
			want: "colshift dev (abc+dirty)",
		},
		{
			name: "no_vcs",
			info: buildInfo{module: "github.com/walteh/colshift", version: "dev", goVersion: "go1.23.5"},
			want: "colshift dev (unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.info.String()
			assert.Contains(t, out, tt.want, "first line should match")
			assert.Contains(t, out, "module:            github.com/walteh/colshift")
			assert.Contains(t, out, "built with:        go1.23.5")
		})
	}
}
