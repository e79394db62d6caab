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

// View describes an addressable window of bits over a caller-owned byte
// buffer.  A view is the triple (buffer, start, end) where [start, end) is
// the half-open range of buffer bits addressable through it, and every
// operation takes local indices in [0, end-start).  Bit b of the buffer is
// bit b%8 of byte b/8, masked least-significant-bit first (mask = 1 << b%8).
// For example, the buffer [0x90, 0x07] is the following bit sequence:
//
// +---+---+---+---+---+---+---+---+ +---+---+---+---+---+---+---+---+
// | 0 | 0 | 0 | 0 | 1 | 0 | 0 | 1 | | 1 | 1 | 1 | 0 | 0 | 0 | 0 | 0 |
// +---+---+---+---+---+---+---+---+ +---+---+---+---+---+---+---+---+
// | 00| 01| 02| 03| 04| 05| 06| 07| | 08| 09| 10| 11| 12| 13| 14| 15|
//
// This bit ordering is fixed and applied uniformly; there is no endianness
// switch.  Likewise, local index 0 is the most significant position for
// Compare and the codec, independent of machine endianness.
//
// A view never owns its buffer and the library retains no state between
// calls.  Operations mutate buffers in place and accept aliased views,
// hence views over a shared buffer are not safe for concurrent mutation.  Views over distinct subslices of one backing array should be
// constructed from the same slice so that aliasing remains detectable.
type View struct {
	data []byte
	// Allocated extent of the buffer, in bits.
	nbits uint
	// Addressable range [start, end) within the extent.
	start uint
	end   uint
}

// NewView constructs an unqualified view covering the entire extent of
// nbits, i.e. with start = 0 and end = nbits.
func NewView(data []byte, nbits uint) (View, error) {
	return NewRange(data, nbits, 0, nbits)
}

// NewRange constructs a view over the (possibly interior) sub-range
// [start, end) of a buffer whose extent is nbits.  This fails with an
// InvalidBoundsError when nbits is zero, the range is empty or inverted,
// the range exceeds the extent, or the buffer cannot back the extent.
func NewRange(data []byte, nbits, start, end uint) (View, error) {
	if nbits == 0 || start >= end || end > nbits {
		return View{}, &InvalidBoundsError{NBits: nbits, Start: start, End: end, BufBytes: -1}
	}
	//
	if uint(len(data)) < ByteSize(nbits) {
		return View{}, &InvalidBoundsError{NBits: nbits, Start: start, End: end, BufBytes: len(data)}
	}
	//
	return View{data, nbits, start, end}, nil
}

// Width returns the number of bits addressable through this view.
func (v View) Width() uint {
	return v.end - v.start
}

// Bounding returns the addressing classification of this view, which
// selects between the byte-level fast paths and the bit-by-bit safe paths
// of every multi-bit operation.
func (v View) Bounding() Bounding {
	switch {
	case v.start != 0 || v.end != v.nbits:
		return Bounded
	case v.nbits%8 != 0:
		return SoftBounded
	default:
		return Unbounded
	}
}

// Slice derives a view over the local sub-range [from, to) of this view.
// The result addresses the same buffer bits, so the derived view aliases
// its parent.
func (v View) Slice(from, to uint) (View, error) {
	if from >= to || to > v.Width() {
		return View{}, &InvalidBoundsError{NBits: v.Width(), Start: from, End: to, BufBytes: -1}
	}
	//
	return v.slice(from, to), nil
}

// Unchecked form of Slice, for bounds already proven in range.
func (v View) slice(from, to uint) View {
	return View{v.data, v.nbits, v.start + from, v.start + to}
}

// Validate a local index against this view, reporting the effective width
// and classification on failure.
func (v View) check(i uint) error {
	if i >= v.Width() {
		return &OutOfRangeError{Index: i, Width: v.Width(), Bounding: v.Bounding()}
	}
	//
	return nil
}

// page returns the offset of the byte containing local bit i.  When the
// extent spans exactly one byte the offset is always 0, so the division is
// skipped.
func (v View) page(i uint) uint {
	if v.nbits <= 8 {
		return 0
	}
	//
	return (i + v.start) / 8
}

// mask returns the single-bit mask selecting local bit i within its page.
func (v View) mask(i uint) byte {
	return 1 << ((i + v.start) % 8)
}
