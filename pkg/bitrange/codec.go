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
package bitrange

import (
	"io"
	"strings"
)

// String renders each bit of this view as '1' or '0' in local-index order,
// index 0 first.
func (v View) String() string {
	var builder strings.Builder
	// Builder writes cannot fail.
	_ = v.EncodeTo(&builder)
	//
	return builder.String()
}

// EncodeTo emits the view's bits to the given sink, character by character
// in local-index order, with no additional framing.
func (v View) EncodeTo(w io.Writer) error {
	buf := [1]byte{}
	//
	for i := uint(0); i < v.Width(); i++ {
		buf[0] = '0'
		//
		if v.get(i) {
			buf[0] = '1'
		}
		//
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	//
	return nil
}

// FromString parses the inverse of String, writing one bit per character in
// local-index order and consuming min(width, len(s)) characters.  Any
// character other than '0' or '1' fails with an InvalidCharacterError
// before a single bit is written.
func (v View) FromString(s string) error {
	minN := min(v.Width(), uint(len(s)))
	// Reject bad input before mutating anything.
	for i := uint(0); i < minN; i++ {
		if s[i] != '0' && s[i] != '1' {
			return &InvalidCharacterError{Char: s[i], Index: int(i)}
		}
	}
	//
	for i := uint(0); i < minN; i++ {
		v.set(i, s[i] == '1')
	}
	//
	return nil
}
