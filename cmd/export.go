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
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kubernetes-sigs/merges2csv/pkg/log"
	"github.com/kubernetes-sigs/merges2csv/pkg/merges"
	"github.com/kubernetes-sigs/merges2csv/pkg/teams"
	"github.com/kubernetes-sigs/merges2csv/pkg/utils"
	"github.com/kubernetes-sigs/merges2csv/pkg/version"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <component>",
	Short: "export merges of a component (main, universe, ...) as a csv file",
	Long: `export downloads <component>.json from merges.ubuntu.com and writes
merges-<component>.csv with one row per package. By default only packages
whose Debian upstream version is newer than Ubuntu's are written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return exportMerges(cmd.Context(), cmd.OutOrStdout(), config, args[0])
	},
}

func init() {
	flags := exportCmd.Flags()
	flags.Bool("exclude-same-upstream", true, "skip packages whose upstream version matches or is ahead of Debian")
	flags.StringSlice("team", []string{}, `only export packages of these comma-separated teams, "all" selects every team`)
	flags.String("team-mode", string(teams.ModeAny), `"any": keep packages of any requested team, "last": decide on the last requested team only`)
	flags.String("merges-url", defaultMergesURL, "url or path of the merges json, %s is replaced by the component")
	flags.String("output", "", `output file path (default "merges-<component>.csv")`)
	addTeamSourceFlags(flags)
	addOrdererFlag(flags)
	addTimeoutFlag(flags)
	rootCmd.AddCommand(exportCmd)
}

func exportMerges(ctx context.Context, out io.Writer, config *viper.Viper, component string) error {
	mode, err := teams.ParseMode(config.GetString("team-mode"))
	if err != nil {
		return err
	}
	orderer, err := version.New(config.GetString("version-orderer"))
	if err != nil {
		return err
	}
	outputFile := config.GetString("output")
	if len(outputFile) == 0 {
		outputFile = fmt.Sprintf("merges-%s.csv", component)
	}
	client := newHTTPClient(config.GetDuration("timeout"))

	source := strings.ReplaceAll(config.GetString("merges-url"), "%s", component)
	log.Info("Downloading merge data from %s", source)
	data, err := utils.GetData(ctx, client, source)
	if err != nil {
		return err
	}
	records, err := utils.GetMergesFromBytes(data)
	if err != nil {
		return errors.Wrapf(err, "error processing %s", source)
	}
	log.Debug("found %d merge records", len(records))

	var resolver *teams.Resolver
	if requested := teamList(config); len(requested) > 0 {
		resolver, err = newResolver(ctx, out, client, config, requested, mode)
		if err != nil {
			return err
		}
	}

	rows, err := merges.Transform(records, merges.Options{
		Orderer:             orderer,
		Resolver:            resolver,
		ExcludeSameUpstream: config.GetBool("exclude-same-upstream"),
	})
	if err != nil {
		return err
	}

	log.Info("generating %s (%d of %d packages)", outputFile, len(rows), len(records))
	if err := merges.WriteFile(outputFile, merges.Header(), rows); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", outputFile)
	return nil
}

// teamList returns the requested team identifiers. Values read from
// MERGES2CSV_TEAM arrive unsplit, so every element is split on commas.
func teamList(config *viper.Viper) []string {
	var requested []string
	for _, value := range config.GetStringSlice("team") {
		for _, team := range strings.Split(value, ",") {
			if team = strings.TrimSpace(team); len(team) > 0 {
				requested = append(requested, team)
			}
		}
	}
	return requested
}

func newResolver(ctx context.Context, out io.Writer, client *resty.Client, config *viper.Viper, requested []string, mode teams.Mode) (*teams.Resolver, error) {
	teamMap, names, err := loadTeams(ctx, client, config)
	if err != nil {
		return nil, err
	}
	resolver, err := teams.NewResolver(teamMap, names, requested, mode)
	var unknown *teams.UnknownTeamError
	if errors.As(err, &unknown) {
		fmt.Fprintf(out, "Known teams:\n")
		printTeams(out, teamMap, names)
	}
	if err != nil {
		return nil, err
	}
	log.Info("Filtering on %d team(s), mode %s", len(resolver.Teams()), mode)
	for _, team := range resolver.Teams() {
		log.InfoH2("%s (%s)", team, teams.Label(names, team))
	}
	return resolver, nil
}
