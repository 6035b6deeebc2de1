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

// NewInsertCmd creates a new insert command
func NewInsertCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		column       string
		defaultValue string
		order        int
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert a column into every file",
		Long: `Insert adds a new column to the header and every row of each file.
The new field is placed before the field currently at position --order (1-based).
Rows receive --default-value. If --order is past the end of the header,
the header is left as is and the file is reported with a warning.`,
		Example: `  colshift insert --path ./data --column created_at --default-value 1970-01-01 --order 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd.Context(), opts, operation.Insert(column, defaultValue, order))
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "name of the column to insert")
	cmd.Flags().StringVar(&defaultValue, "default-value", "", "value written into every data row")
	cmd.Flags().IntVar(&order, "order", 0, "1-based position of the new column")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("order")

	return cmd
}
