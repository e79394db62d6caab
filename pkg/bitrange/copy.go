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

// Copy copies min(src.Width(), dst.Width()) bits from src into dst.  The
// two views may overlap in memory with different bit offsets; iteration
// direction is chosen so the destination never overwrites source bits which
// have yet to be read, mirroring memmove at bit granularity.  For example,
// copying the 8-bit window starting at bit 3 down to the window starting at
// bit 0 of the same buffer:
//
// +---+---+---+---+---+---+---+---+ +---+---+---+---+---+---+---+---+
// |   |   |   | X | X | X | X | X | | X | X | X |   |   |   |   |   |
// +---+---+---+---+---+---+---+---+ +---+---+---+---+---+---+---+---+
// | 00| 01| 02| 03| 04| 05| 06| 07| | 08| 09| 10| 11| 12| 13| 14| 15|
//
// proceeds in ascending local order, since bit 3 must land in bit 0 before
// bit 6 lands in bit 3.  Copying in the opposite direction proceeds in
// descending order.
func Copy(src, dst View) {
	// Identical views have nothing to do.
	if same(src, dst) {
		return
	}
	// Identical unbounded byte extents which cannot alias admit a direct
	// block copy.
	if src.Bounding() == Unbounded && dst.Bounding() == Unbounded &&
		src.nbits == dst.nbits && !Overlaps(src, dst) {
		copy(dst.data[:ByteSize(dst.nbits)], src.data[:ByteSize(src.nbits)])
		//
		return
	}
	//
	minN := min(src.Width(), dst.Width())
	//
	if Overlaps(src, dst) {
		if src.start < dst.start {
			// Destination sits ahead of the source, so copy backwards.
			for i := minN; i > 0; i-- {
				dst.set(i-1, src.get(i-1))
			}
		} else {
			for i := uint(0); i < minN; i++ {
				dst.set(i, src.get(i))
			}
		}
		//
		return
	}
	// Disjoint views take the faster route: zero the target range, then OR
	// the source into it.  OR onto zero is assignment.
	target := dst.slice(0, minN)
	target.Fill(false)
	Or(src.slice(0, minN), target, target)
}
