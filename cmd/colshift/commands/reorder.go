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
	"github.com/spf13/cobra"
	"github.com/walteh/colshift/cmd/colshift/opts"
	"github.com/walteh/colshift/pkg/operation"
)

// NewReorderCmd creates a new reorder command
func NewReorderCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		column string
		order  int
	)

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Move an existing column in every file",
		Long: `Reorder moves the first column named --column to position --order (1-based)
in the header and every row. Files where the column is already in place are left
unchanged. A file without the column fails the run.`,
		Example: `  colshift reorder --path ./data --column id --order 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd.Context(), opts, operation.Reorder(column, order))
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "name of the column to move")
	cmd.Flags().IntVar(&order, "order", 0, "1-based target position")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("order")

	return cmd
}
