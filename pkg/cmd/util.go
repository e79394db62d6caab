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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-bitrange/pkg/bitrange"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the persistent verbosity flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Parse a '0'/'1' operand into a freshly allocated buffer, returning a view
// over it.  When the --start / --end flags are given, the view is narrowed
// to that local sub-range (forcing the bit-by-bit safe paths).
func readOperand(cmd *cobra.Command, arg string) bitrange.View {
	var (
		nbits = uint(len(arg))
		start = GetUint(cmd, "start")
		end   = GetUint(cmd, "end")
	)
	//
	view, err := bitrange.NewView(bitrange.NewBuffer(nbits), nbits)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if err := view.FromString(arg); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Narrow when explicit bounds requested
	if end != 0 {
		if view, err = view.Slice(start, end); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	log.Debugf("parsed a %s operand of %d bits", view.Bounding(), view.Width())
	//
	return view
}

// Register the bounding flags shared by every operand-taking command.
func addBoundsFlags(cmd *cobra.Command) {
	cmd.Flags().Uint("start", 0, "inclusive start bit of the operand views")
	cmd.Flags().Uint("end", 0, "exclusive end bit of the operand views (0 = full width)")
}
