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

// And computes dst = left & right over the common width of the three
// views, any of which may alias any other.
func And(left, right, dst View) {
	// left & left is left.
	if same(left, right) {
		Copy(left, dst)
		//
		return
	}
	//
	if fastPath(left, right, dst) {
		byteCombine(left, right, dst, func(l, r byte) byte { return l & r })
	} else {
		bitCombine(left, right, dst, func(l, r bool) bool { return l && r })
	}
}

// Or computes dst = left | right over the common width of the three views,
// any of which may alias any other.
func Or(left, right, dst View) {
	// left | left is left.
	if same(left, right) {
		Copy(left, dst)
		//
		return
	}
	//
	if fastPath(left, right, dst) {
		byteCombine(left, right, dst, func(l, r byte) byte { return l | r })
	} else {
		bitCombine(left, right, dst, func(l, r bool) bool { return l || r })
	}
}

// Xor computes dst = left ^ right over the common width of the three
// views, any of which may alias any other.
func Xor(left, right, dst View) {
	// left ^ left is zero.  This cannot be left to the general algorithm,
	// which has no way to distinguish the same source read twice from two
	// sources which happen to hold the same bits.
	if same(left, right) {
		dst.Fill(false)
		//
		return
	}
	//
	if fastPath(left, right, dst) {
		byteCombine(left, right, dst, func(l, r byte) byte { return l ^ r })
	} else {
		bitCombine(left, right, dst, func(l, r bool) bool { return l != r })
	}
}

// Not computes dst = ~src over the common width of the two views.  When the
// views alias, the destination is flipped in place with the iteration
// direction chosen as for Copy; otherwise dst is filled with ones and the
// source XORed into it, since 1 ^ b == ~b.
func Not(src, dst View) {
	if Overlaps(src, dst) {
		var (
			minN   = min(src.Width(), dst.Width())
			target = dst.slice(0, minN)
		)
		//
		if src.start < dst.start {
			for i := minN; i > 0; i-- {
				target.flip(i - 1)
			}
		} else {
			for i := uint(0); i < minN; i++ {
				target.flip(i)
			}
		}
		//
		return
	}
	//
	dst.Fill(true)
	Xor(src, dst, dst)
}

// fastPath decides whether a three-operand combinator may run byte-by-byte:
// no operand may carry a bit-range restriction, and all must share one
// extent.
func fastPath(left, right, dst View) bool {
	return left.Bounding() == Unbounded && right.Bounding() == Unbounded &&
		dst.Bounding() == Unbounded && left.nbits == right.nbits && left.nbits == dst.nbits
}

// byteCombine is the unbounded fast path: one pass over whole bytes.
func byteCombine(left, right, dst View, op func(byte, byte) byte) {
	for k := uint(0); k < ByteSize(dst.nbits); k++ {
		dst.data[k] = op(left.data[k], right.data[k])
	}
}

// bitCombine is the safe path for bounded or aliasing operands.  When the
// operands alias each other and the destination, and an operand's range
// starts before the destination's, iteration must run in descending order
// or already-combined bits would be read back as inputs.
func bitCombine(left, right, dst View, op func(bool, bool) bool) {
	var (
		minN = min(left.Width(), right.Width(), dst.Width())
		l    = left.slice(0, minN)
		r    = right.slice(0, minN)
		d    = dst.slice(0, minN)
	)
	//
	if Overlaps(l, r) && (Overlaps(l, d) || Overlaps(r, d)) &&
		(l.start < d.start || r.start < d.start) {
		for i := minN; i > 0; i-- {
			d.set(i-1, op(l.get(i-1), r.get(i-1)))
		}
		//
		return
	}
	//
	for i := uint(0); i < minN; i++ {
		d.set(i, op(l.get(i), r.get(i)))
	}
}
