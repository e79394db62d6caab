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

// Fill sets every bit of this view to b.  Unbounded views are filled a byte
// at a time; bounded and soft-bounded views fall back to a bit-by-bit loop,
// since partial bytes must not be clobbered.
func (v View) Fill(b bool) {
	if v.Bounding() == Unbounded {
		var fill byte
		//
		if b {
			fill = 0xff
		}
		//
		if n := ByteSize(v.nbits); n == 1 {
			v.data[0] = fill
		} else {
			for i := range v.data[:n] {
				v.data[i] = fill
			}
		}
		//
		return
	}
	//
	for i := uint(0); i < v.Width(); i++ {
		v.set(i, b)
	}
}
