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

	"github.com/spf13/cobra"

	"github.com/kubernetes-sigs/merges2csv/pkg/version"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <ubuntu-version> <debian-version>",
	Short: "print how an Ubuntu version compares to a Debian version",
	Long:  ``,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		orderer, err := version.New(config.GetString("version-orderer"))
		if err != nil {
			return err
		}
		ordering, err := version.Compare(orderer, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[0], ordering, args[1])
		return nil
	},
}

func init() {
	addOrdererFlag(compareCmd.Flags())
	rootCmd.AddCommand(compareCmd)
}
