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
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/colshift/pkg/status"
	"github.com/walteh/colshift/pkg/table"
)

func testContext() context.Context {
	return zerolog.New(os.Stderr).Level(zerolog.WarnLevel).WithContext(context.Background())
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "writing fixture should succeed")
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err, "reading file should succeed")
	return string(content)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		op          Operation
		opts        ApplyOptions
		want        string
		wantStatus  status.FileStatus
		wantDropped bool
		wantErr     error
	}{
		{
			name:    "insert_wide_table",
			content: "H1,H2,H3,H4,H5,H6,H7,H8,H9\nV1,V2,V3,V4,V5,V6,V7,V8,V9\nV11,V22,V33,V44,V55,V66,V77,V88,V99",
			op:      Insert("H_new", "V_new", 3),
			opts:    ApplyOptions{Atomic: true},
			want: "H1,H2,H_new,H3,H4,H5,H6,H7,H8,H9\n" +
				"V1,V2,V_new,V3,V4,V5,V6,V7,V8,V9\n" +
				"V11,V22,V_new,V33,V44,V55,V66,V77,V88,V99\n",
			wantStatus: status.StatusModified,
		},
		{
			name:       "insert_in_place_write",
			content:    "H1,H2,H3\nV1,V2,V3\n",
			op:         Insert("X", "D", 2),
			opts:       ApplyOptions{Atomic: false},
			want:       "H1,X,H2,H3\nV1,D,V2,V3\n",
			wantStatus: status.StatusModified,
		},
		{
			name:        "insert_past_header_end",
			content:     "H1,H2,H3\nV1,V2,V3\n",
			op:          Insert("X", "D", 4),
			opts:        ApplyOptions{Atomic: true},
			want:        "H1,H2,H3\nV1,V2,V3\n",
			wantStatus:  status.StatusModified,
			wantDropped: true,
		},
		{
			name:       "insert_default_needing_quotes",
			content:    "H1,H2\nV1,V2\n",
			op:         Insert("note", "a, \"b\"", 2),
			opts:       ApplyOptions{Atomic: true},
			want:       "H1,note,H2\nV1,\"a, \"\"b\"\"\",V2\n",
			wantStatus: status.StatusModified,
		},
		{
			name:       "reorder_last_to_first",
			content:    "H1,H2,H3\nV1,V2,V3\nV11,V22,V33\n",
			op:         Reorder("H3", 1),
			opts:       ApplyOptions{Atomic: true},
			want:       "H3,H1,H2\nV3,V1,V2\nV33,V11,V22\n",
			wantStatus: status.StatusModified,
		},
		{
			name:       "reorder_identity_reserializes",
			content:    "H1,H2,H3\r\nV1,V2,V3",
			op:         Reorder("H2", 2),
			opts:       ApplyOptions{Atomic: true},
			want:       "H1,H2,H3\nV1,V2,V3\n",
			wantStatus: status.StatusUnchanged,
		},
		{
			name:       "reorder_keeps_quoted_fields",
			content:    "id,text\n1,\"line one\nline two\"\n",
			op:         Reorder("text", 1),
			opts:       ApplyOptions{Atomic: true},
			want:       "text,id\n\"line one\nline two\",1\n",
			wantStatus: status.StatusModified,
		},
		{
			name:       "reorder_missing_column",
			content:    "H1,H2,H3\nV1,V2,V3",
			op:         Reorder("H4", 1),
			opts:       ApplyOptions{Atomic: true},
			want:       "H1,H2,H3\nV1,V2,V3",
			wantStatus: status.StatusFailed,
			wantErr:    ErrSchema,
		},
		{
			name:       "reorder_short_row",
			content:    "H1,H2,H3\nV1,V2,V3\nV1",
			op:         Reorder("H2", 1),
			opts:       ApplyOptions{Atomic: true},
			want:       "H1,H2,H3\nV1,V2,V3\nV1",
			wantStatus: status.StatusFailed,
			wantErr:    ErrSchema,
		},
		{
			name:       "empty_file",
			content:    "",
			op:         Insert("X", "D", 1),
			opts:       ApplyOptions{Atomic: true},
			want:       "",
			wantStatus: status.StatusFailed,
			wantErr:    ErrSchema,
		},
		{
			name:       "malformed_file",
			content:    "H1,H2\n\"V1,V2\n",
			op:         Insert("X", "D", 1),
			opts:       ApplyOptions{Atomic: true},
			want:       "H1,H2\n\"V1,V2\n",
			wantStatus: status.StatusFailed,
			wantErr:    ErrParse,
		},
		{
			name:       "dry_run_leaves_file",
			content:    "H1,H2,H3\nV1,V2,V3",
			op:         Reorder("H3", 1),
			opts:       ApplyOptions{Atomic: true, DryRun: true},
			want:       "H1,H2,H3\nV1,V2,V3",
			wantStatus: status.StatusPlanned,
		},
	}

	ctx := testContext()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, tt.content)

			res, err := Apply(ctx, path, tt.op, tt.opts)
			if tt.wantErr != nil {
				require.Error(t, err, "Apply should fail")
				assert.True(t, errors.Is(err, tt.wantErr), "error should be %v, got %v", tt.wantErr, err)
				assert.Equal(t, err, res.Err, "result should carry the error")
			} else {
				require.NoError(t, err, "Apply should succeed")
			}

			assert.Equal(t, tt.wantStatus, res.Status, "status should match")
			assert.Equal(t, tt.wantDropped, res.Dropped, "dropped flag should match")
			assert.Equal(t, path, res.Path, "path should match")
			assert.Equal(t, tt.want, readFile(t, path), "file content should match")
		})
	}
}

func TestApplyErrorDetails(t *testing.T) {
	ctx := testContext()
	path := writeFixture(t, "H1,H2\nV1,V2\n")

	_, err := Apply(ctx, path, Reorder("missing", 1), ApplyOptions{Atomic: true})
	require.Error(t, err)

	var fileErr *Error
	require.True(t, errors.As(err, &fileErr), "error should be an *Error")
	assert.Equal(t, path, fileErr.Path, "error should name the file")
	assert.True(t, errors.Is(err, table.ErrColumnNotFound), "cause should be reachable")
	assert.False(t, errors.Is(err, ErrIO), "error should not match other kinds")
}

func TestApplyMissingFile(t *testing.T) {
	ctx := testContext()
	path := filepath.Join(t.TempDir(), "missing.csv")

	res, err := Apply(ctx, path, Insert("X", "D", 1), ApplyOptions{Atomic: true})
	require.Error(t, err, "Apply should fail for a missing file")
	assert.True(t, errors.Is(err, ErrIO), "error should be an io error")
	assert.True(t, errors.Is(err, os.ErrNotExist), "os error should be reachable")
	assert.Equal(t, status.StatusFailed, res.Status)
}

func TestApplyBackup(t *testing.T) {
	ctx := testContext()
	path := writeFixture(t, "H1,H2\nV1,V2")

	_, err := Apply(ctx, path, Insert("X", "D", 1), ApplyOptions{Atomic: true, Backup: true})
	require.NoError(t, err, "Apply should succeed")

	assert.Equal(t, "X,H1,H2\nD,V1,V2\n", readFile(t, path), "file should be migrated")
	assert.Equal(t, "H1,H2\nV1,V2", readFile(t, path+status.BackupSuffix), "backup should hold the original")
}

func TestApplyHeaders(t *testing.T) {
	ctx := testContext()
	path := writeFixture(t, "H1,H2,H3\nV1,V2,V3\n")

	res, err := Apply(ctx, path, Reorder("H3", 2), ApplyOptions{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"H1", "H2", "H3"}, res.HeaderBefore, "header before should match")
	assert.Equal(t, []string{"H1", "H3", "H2"}, res.HeaderAfter, "header after should match")
}

func TestApplyTwiceMatchesReparse(t *testing.T) {
	ctx := testContext()
	path := writeFixture(t, "a,b\n\"x,y\",\"multi\nline\"\n")

	_, err := Apply(ctx, path, Insert("c", "z", 2), ApplyOptions{Atomic: true})
	require.NoError(t, err)
	_, err = Apply(ctx, path, Reorder("c", 3), ApplyOptions{Atomic: true})
	require.NoError(t, err)

	tbl, err := table.ParseBytes([]byte(readFile(t, path)))
	require.NoError(t, err, "migrated file should re-parse")
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Header)
	assert.Equal(t, [][]string{{"x,y", "multi\nline", "z"}}, tbl.Rows)
}

func TestApplyIdentityReorderKeepsEveryRow(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name    string
		content string
		op      Operation
		want    string
	}{
		{
			name:    "lone_empty_field",
			content: "H1\n\"\"\nv\n",
			op:      Reorder("H1", 1),
			want:    "H1\n\"\"\nv\n",
		},
		{
			name:    "crlf_inside_quotes",
			content: "H1,H2\n\"x\r\ny\",v\n",
			op:      Reorder("H1", 1),
			want:    "H1,H2\n\"x\r\ny\",v\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, tt.content)

			for i := 0; i < 2; i++ {
				res, err := Apply(ctx, path, tt.op, ApplyOptions{Atomic: true})
				require.NoError(t, err, "run %d should succeed", i+1)
				assert.Equal(t, status.StatusUnchanged, res.Status, "run %d should be unchanged", i+1)
				assert.Equal(t, tt.want, readFile(t, path), "content after run %d", i+1)
			}
		})
	}
}

func TestApplyInsertKeepsCRLFInsideQuotes(t *testing.T) {
	path := writeFixture(t, "H1,H2\n\"x\r\ny\",v\n")

	_, err := Apply(testContext(), path, Insert("X", "D", 1), ApplyOptions{Atomic: true})
	require.NoError(t, err)
	assert.Equal(t, "X,H1,H2\nD,\"x\r\ny\",v\n", readFile(t, path), "quoted \\r\\n should be kept")
}

func TestResultNote(t *testing.T) {
	assert.Empty(t, Result{Status: status.StatusModified}.Note())
	assert.Equal(t, "column already in place", Result{Status: status.StatusUnchanged}.Note())
	assert.Contains(t, Result{Status: status.StatusModified, Dropped: true}.Note(), "outside header")
	assert.Equal(t, "boom", Result{Status: status.StatusFailed, Err: errors.New("boom")}.Note())
}
