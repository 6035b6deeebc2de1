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
	"context"

	"github.com/walteh/colshift/cmd/colshift/opts"
	"github.com/walteh/colshift/pkg/log"
	"github.com/walteh/colshift/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// runOperation validates op and applies it to every file under the configured root
func runOperation(ctx context.Context, o *opts.RootOpts, op operation.Operation) error {
	if err := op.Validate(); err != nil {
		return errors.Errorf("invalid operation: %w", err)
	}

	root, err := o.Root()
	if err != nil {
		return err
	}

	runner := operation.NewRunner(o.RunnerOptions(), log.FromContext(ctx))
	if _, err := runner.RunDir(ctx, op, root, o.Config.LocateOptions()); err != nil {
		return errors.Errorf("running %s: %w", op.Kind, err)
	}

	return nil
}
