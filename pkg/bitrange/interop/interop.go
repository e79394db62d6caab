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

// Package interop converts between bit-range views and the common bitmap
// containers of the wider ecosystem.  Conversions are lossless for set-bit
// positions within the view's width; positions beyond it are discarded.
package interop

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/consensys/go-bitrange/pkg/bitrange"
)

// ToBitSet collects the set bits of a view into a bits-and-blooms bitset,
// preserving local indices.
func ToBitSet(v bitrange.View) *bitset.BitSet {
	bs := bitset.New(v.Width())
	//
	for i := uint(0); i < v.Width(); i++ {
		if b, _ := v.Get(i); b {
			bs.Set(i)
		}
	}
	//
	return bs
}

// FromBitSet writes the first width bits of a bitset into a view, clearing
// positions the bitset does not contain.
func FromBitSet(v bitrange.View, bs *bitset.BitSet) {
	for i := uint(0); i < v.Width(); i++ {
		// In range by construction.
		_ = v.Set(i, bs.Test(i))
	}
}

// ToRoaring collects the set bits of a view into a roaring bitmap,
// preserving local indices.
func ToRoaring(v bitrange.View) *roaring.Bitmap {
	bm := roaring.New()
	//
	for i := uint(0); i < v.Width(); i++ {
		if b, _ := v.Get(i); b {
			bm.Add(uint32(i))
		}
	}
	//
	return bm
}

// FromRoaring writes the first width positions of a roaring bitmap into a
// view, clearing positions the bitmap does not contain.
func FromRoaring(v bitrange.View, bm *roaring.Bitmap) {
	for i := uint(0); i < v.Width(); i++ {
		// In range by construction.
		_ = v.Set(i, bm.Contains(uint32(i)))
	}
}
