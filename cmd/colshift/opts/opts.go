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

package opts

import (
	"github.com/walteh/colshift/pkg/config"
	"github.com/walteh/colshift/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Config is the loaded config with flag overrides applied
	Config *config.Config
	DryRun bool
}

// Root returns the directory to migrate
func (o *RootOpts) Root() (string, error) {
	if o.Config == nil || o.Config.Path == "" {
		return "", errors.New("no path given, use --path or set path in the config file")
	}
	return o.Config.Path, nil
}

// RunnerOptions returns the runner settings for this invocation
func (o *RootOpts) RunnerOptions() operation.RunnerOptions {
	apply := o.Config.ApplyOptions()
	apply.DryRun = o.DryRun
	return operation.RunnerOptions{
		Apply:           apply,
		ContinueOnError: o.Config.ContinueOnError,
	}
}
