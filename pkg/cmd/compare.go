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

	"github.com/spf13/cobra"

	"github.com/consensys/go-bitrange/pkg/bitrange"
)

var compareCmd = &cobra.Command{
	Use:   "compare left right",
	Short: "order two operands lexicographically over their common width.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			left  = readOperand(cmd, args[0])
			right = readOperand(cmd, args[1])
		)
		//
		fmt.Println(bitrange.Compare(left, right))
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addBoundsFlags(compareCmd)
}
