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
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kubernetes-sigs/merges2csv/pkg/log"
	"github.com/kubernetes-sigs/merges2csv/pkg/teams"
	"github.com/kubernetes-sigs/merges2csv/pkg/utils"
)

// teamsCmd represents the teams command
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "print the teams of the package mapping with their display names",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client := newHTTPClient(config.GetDuration("timeout"))
		teamMap, names, err := loadTeams(cmd.Context(), client, config)
		if err != nil {
			return err
		}
		printTeams(cmd.OutOrStdout(), teamMap, names)
		return nil
	},
}

func init() {
	addTeamSourceFlags(teamsCmd.Flags())
	addTimeoutFlag(teamsCmd.Flags())
	rootCmd.AddCommand(teamsCmd)
}

// loadTeams fetches the team mapping and merges display name overrides into
// the built-in labels.
func loadTeams(ctx context.Context, client *resty.Client, config *viper.Viper) (utils.TeamMap, utils.DisplayNames, error) {
	source := config.GetString("teams-url")
	log.Info("Downloading team mapping from %s", source)
	data, err := utils.GetData(ctx, client, source)
	if err != nil {
		return nil, nil, err
	}
	teamMap, err := utils.GetTeamMapFromBytes(data)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("found %d teams", len(teamMap))

	names := teams.DefaultDisplayNames()
	if path := config.GetString("team-names"); len(path) > 0 {
		overrides, err := utils.GetDisplayNames(path)
		if err != nil {
			return nil, nil, err
		}
		names = teams.MergeDisplayNames(names, overrides)
	}
	return teamMap, names, nil
}

func printTeams(w io.Writer, teamMap utils.TeamMap, names utils.DisplayNames) {
	for _, team := range teamMap.Teams() {
		label := teams.Label(names, team)
		if len(label) == 0 {
			label = "-"
		}
		fmt.Fprintf(w, "%s (%s): %d packages\n", team, label, len(teamMap[team]))
	}
}
