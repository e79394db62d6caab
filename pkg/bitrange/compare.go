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

import "math/bits"

// Compare orders two views lexicographically, scanning from local index 0
// upward and treating a set bit as greater at the first differing position.
// It returns +1 when left is greater, -1 when right is, and 0 otherwise.
//
// Only the common range min(left.Width(), right.Width()) is considered;
// bits beyond it in the wider operand are ignored, so "11" and "110"
// compare equal.  This is a deliberate simplification and not an unsigned
// big-integer comparison.
func Compare(left, right View) int {
	minN := min(left.Width(), right.Width())
	//
	for i := uint(0); i < minN; i++ {
		l, r := left.get(i), right.get(i)
		//
		if l != r {
			if l {
				return 1
			}
			//
			return -1
		}
	}
	//
	return 0
}

// Equal reports whether two views hold the same bits over their common
// range, under the same contract as Compare.
func Equal(left, right View) bool {
	return Compare(left, right) == 0
}

// All reports whether every bit of this view is set.
func (v View) All() bool {
	if v.Bounding() == Unbounded {
		for _, b := range v.data[:ByteSize(v.nbits)] {
			if b != 0xff {
				return false
			}
		}
		//
		return true
	}
	//
	for i := uint(0); i < v.Width(); i++ {
		if !v.get(i) {
			return false
		}
	}
	//
	return true
}

// Any reports whether at least one bit of this view is set, evaluating the
// view as a boolean.
func (v View) Any() bool {
	if v.Bounding() == Unbounded {
		for _, b := range v.data[:ByteSize(v.nbits)] {
			if b != 0 {
				return true
			}
		}
		//
		return false
	}
	//
	for i := uint(0); i < v.Width(); i++ {
		if v.get(i) {
			return true
		}
	}
	//
	return false
}

// Count returns the number of set bits in this view.
func (v View) Count() uint {
	if v.Bounding() == Unbounded {
		count := uint(0)
		//
		for _, b := range v.data[:ByteSize(v.nbits)] {
			count += uint(bits.OnesCount8(b))
		}
		//
		return count
	}
	//
	count := uint(0)
	//
	for i := uint(0); i < v.Width(); i++ {
		if v.get(i) {
			count++
		}
	}
	//
	return count
}
