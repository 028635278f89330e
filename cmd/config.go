/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kubernetes-sigs/merges2csv/pkg/utils"
)

// envPrefix namespaces environment overrides, e.g. MERGES2CSV_TEAMS_URL.
const envPrefix = "MERGES2CSV"

const (
	defaultMergesURL = "https://merges.ubuntu.com/%s.json"
	defaultTeamsURL  = "https://people.canonical.com/~ubuntu-archive/package-team-mapping.json"
)

// newHTTPClient is swapped out in tests.
var newHTTPClient = utils.NewHTTPClient

// loadConfig resolves the command's flags, falling back to MERGES2CSV_*
// environment variables for flags that were not set explicitly.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	if err := config.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return config, nil
}

func addTimeoutFlag(flags *pflag.FlagSet) {
	flags.Duration("timeout", 60*time.Second, "timeout for each http request, 0 disables it")
}

func addOrdererFlag(flags *pflag.FlagSet) {
	flags.String("version-orderer", "native", `how Debian versions are ordered: "native" or "dpkg" (requires dpkg on PATH)`)
}

func addTeamSourceFlags(flags *pflag.FlagSet) {
	flags.String("teams-url", defaultTeamsURL, "url or path of the team to packages mapping (json or yaml)")
	flags.String("team-names", "", "yaml file overriding team display names")
}
