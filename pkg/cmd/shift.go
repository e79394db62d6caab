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
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift bits by",
	Short: "shift an operand towards local index 0 (or away with --right).",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		view := readOperand(cmd, args[0])
		//
		by, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "right") {
			log.Debugf("shifting %d bits right by %d", view.Width(), by)
			view.ShiftRight(uint(by))
		} else {
			log.Debugf("shifting %d bits left by %d", view.Width(), by)
			view.ShiftLeft(uint(by))
		}
		//
		fmt.Println(view.String())
	},
}

func init() {
	rootCmd.AddCommand(shiftCmd)
	addBoundsFlags(shiftCmd)
	shiftCmd.Flags().Bool("right", false, "shift towards the highest local index")
}
