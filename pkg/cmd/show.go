// Copyright Consensys Software Inc.
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

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-bitrange/pkg/bitrange"
)

var showCmd = &cobra.Command{
	Use:   "show bits",
	Short: "describe an operand view and render its bits.",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		view := readOperand(cmd, args[0])
		//
		fmt.Printf("width:      %d bits\n", view.Width())
		fmt.Printf("bytes:      %d\n", bitrange.ByteSize(view.Width()))
		fmt.Printf("bounding:   %s\n", view.Bounding())
		fmt.Printf("population: %d\n", view.Count())
		// Wrap the rendering to the terminal (when there is one)
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}
		//
		for s := view.String(); len(s) > 0; {
			n := min(width, len(s))
			fmt.Println(s[:n])
			s = s[n:]
		}
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(showCmd)
	addBoundsFlags(showCmd)
}
