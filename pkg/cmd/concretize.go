// Copyright The go-knownbits Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/knownbits-dev/go-knownbits/pkg/knownbits"
	"github.com/spf13/cobra"
)

var concretizeCmd = &cobra.Command{
	Use:   "concretize pattern",
	Short: "list every concrete value consistent with an abstract pattern.",
	Long: `List every concrete value consistent with an abstract pattern such as "?10?",
	 in both decimal and binary, together with the abstraction recovered from the
	 listed values.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		pattern, err := knownbits.Parse(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		values, err := pattern.Concretize()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		for _, value := range values {
			fmt.Printf("%d (0b%0*b)\n", value, int(pattern.Width()), value)
		}
		// Close the loop, recovering the best abstraction of the listed
		// values.
		recovered, err := knownbits.Abstract(pattern.Width(), values)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Printf("%d values abstracting to %s\n", len(values), recovered)
	},
}

func init() {
	rootCmd.AddCommand(concretizeCmd)
}
