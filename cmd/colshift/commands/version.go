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
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/colshift/pkg/locate"
	"github.com/walteh/colshift/pkg/log"
)

// configFormats lists the config file extensions colshift reads
var configFormats = []string{"yaml", "yml", "hcl", "json", "toml"}

// buildInfo describes the running colshift binary
type buildInfo struct {
	module    string
	version   string
	revision  string
	dirty     bool
	goVersion string
}

// readBuildInfo fills buildInfo from the embedded module data, falling back to "dev"
func readBuildInfo() buildInfo {
	info := buildInfo{module: "github.com/walteh/colshift", version: "dev", goVersion: runtime.Version()}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if bi.Main.Path != "" {
		info.module = bi.Main.Path
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.revision = setting.Value
		case "vcs.modified":
			info.dirty = setting.Value == "true"
		}
	}
	return info
}

// String renders the version banner
func (b buildInfo) String() string {
	revision := b.revision
	if revision == "" {
		revision = "unknown"
	} else if len(revision) > 12 {
		revision = revision[:12]
	}
	if b.dirty {
		revision += "+dirty"
	}

	return fmt.Sprintf(`colshift %s (%s)
module:            %s
default extension: .%s
config formats:    %s
built with:        %s %s/%s`,
		b.version, revision,
		b.module,
		locate.DefaultExtension,
		strings.Join(configFormats, ", "),
		b.goVersion, runtime.GOOS, runtime.GOARCH)
}

// NewVersionCmd creates a new version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, build and supported format information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.FromContext(cmd.Context()).Plain(readBuildInfo().String())
			return nil
		},
	}
}
