/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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

	"github.com/notargets/gomesh/samples"
)

// sampleCmd lists the built in sample meshes
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "List the sample meshes available to build -s",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range samples.Names() {
			in, _ := samples.ByName(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %dD  %3d nodes %3d cells\n",
				name, in.NDim, in.NumNodes(), in.NumCells())
		}
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
