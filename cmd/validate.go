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
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/kubernetes-sigs/merges2csv/pkg/utils"
)

var validateKind string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "ensure local merges or team mapping files have the correct data structure",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			data, err := ioutil.ReadFile(path)
			if err != nil {
				return err
			}
			switch validateKind {
			case "merges":
				records, err := utils.GetMergesFromBytes(data)
				if err != nil {
					return fmt.Errorf("error parsing file: %s - %w", path, err)
				}
				for i, record := range records {
					if len(record.SourcePackage()) == 0 {
						return fmt.Errorf("error parsing file: %s - record %d has no source_package", path, i)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Processed %s: %d merge records\n", path, len(records))
			case "teams":
				teamMap, err := utils.GetTeamMapFromBytes(data)
				if err != nil {
					return fmt.Errorf("error parsing file: %s - %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Processed %s: %d teams\n", path, len(teamMap))
			default:
				return fmt.Errorf("unknown kind %q, expected one of \"merges\" \"teams\"", validateKind)
			}
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateKind, "kind", "merges", `type of the files: "merges" or "teams"`)
	rootCmd.AddCommand(validateCmd)
}
