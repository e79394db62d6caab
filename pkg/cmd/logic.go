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

var andCmd = &cobra.Command{
	Use:   "and left right",
	Short: "print the bitwise AND of two operands.",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary(bitrange.And),
}

var orCmd = &cobra.Command{
	Use:   "or left right",
	Short: "print the bitwise OR of two operands.",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary(bitrange.Or),
}

var xorCmd = &cobra.Command{
	Use:   "xor left right",
	Short: "print the bitwise XOR of two operands.",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary(bitrange.Xor),
}

var notCmd = &cobra.Command{
	Use:   "not bits",
	Short: "print the bitwise complement of an operand.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		src := readOperand(cmd, args[0])
		dst := newResult(src.Width())
		//
		bitrange.Not(src, dst)
		fmt.Println(dst.String())
	},
}

// Build a command runner combining two operands into a fresh destination of
// their common width.
func runBinary(apply func(left, right, dst bitrange.View)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			left  = readOperand(cmd, args[0])
			right = readOperand(cmd, args[1])
			dst   = newResult(min(left.Width(), right.Width()))
		)
		//
		log.Debugf("combining %d bits", dst.Width())
		//
		apply(left, right, dst)
		fmt.Println(dst.String())
	}
}

// Allocate an unbounded destination view of the given width.
func newResult(nbits uint) bitrange.View {
	view, err := bitrange.NewView(bitrange.NewBuffer(nbits), nbits)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return view
}

func init() {
	rootCmd.AddCommand(andCmd)
	rootCmd.AddCommand(orCmd)
	rootCmd.AddCommand(xorCmd)
	rootCmd.AddCommand(notCmd)
	//
	for _, cmd := range []*cobra.Command{andCmd, orCmd, xorCmd, notCmd} {
		addBoundsFlags(cmd)
	}
}
