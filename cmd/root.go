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
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubernetes-sigs/merges2csv/pkg/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "merges2csv",
	Short: "Turn merges.ubuntu.com reports into spreadsheets",
	Long: `merges2csv downloads the outstanding package merges of an Ubuntu
component from merges.ubuntu.com and writes them as a csv file, optionally
limited to the packages a team is subscribed to.`,
	Example: `  # Export every main package that is behind Debian
  merges2csv export main

  # Export universe merges owned by the server team
  merges2csv export universe --team ubuntu-server

  # List the known teams
  merges2csv teams`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
		}
		log.Debug("Running script : %s", time.Now().Format("01-02-2006 15:04:05"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
