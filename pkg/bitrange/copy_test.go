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
	"math/rand"
	"slices"
	"testing"
)

func Test_Copy_00(t *testing.T) {
	// Identical views are a no-op
	data := []byte{0b1001_1111}
	view, _ := NewView(data, 8)
	//
	Copy(view, view)
	//
	if data[0] != 0b1001_1111 {
		t.Errorf("expected buffer unchanged, got %v", data)
	}
}

func Test_Copy_01(t *testing.T) {
	// Disjoint unbounded views of equal extent block copy
	var (
		src, _ = NewView([]byte{0b1001_1111, 0b0000_0111}, 16)
		data   = NewBuffer(16)
		dst, _ = NewView(data, 16)
	)
	//
	Copy(src, dst)
	//
	if !slices.Equal(data, []byte{0b1001_1111, 0b0000_0111}) {
		t.Errorf("expected [159 7], got %v", data)
	}
}

func Test_Copy_02(t *testing.T) {
	// Overlapping, copying towards lower offsets (ascending order)
	data := []byte{0b1001_1111, 0x00}
	src, _ := NewRange(data, 16, 3, 11)
	dst, _ := NewRange(data, 16, 0, 8)
	//
	Copy(src, dst)
	//
	if !slices.Equal(data, []byte{0b0001_0011, 0x00}) {
		t.Errorf("expected [19 0], got %v", data)
	}
}

func Test_Copy_03(t *testing.T) {
	// Overlapping, copying towards higher offsets (descending order)
	data := []byte{0b1001_1111, 0x00}
	src, _ := NewRange(data, 16, 0, 8)
	dst, _ := NewRange(data, 16, 3, 11)
	//
	Copy(src, dst)
	//
	if !slices.Equal(data, []byte{0xff, 0b0000_0100}) {
		t.Errorf("expected [255 4], got %v", data)
	}
}

func Test_Copy_04(t *testing.T) {
	// Width mismatch copies the common prefix only
	var (
		src, _ = NewView([]byte{0xff}, 8)
		data   = NewBuffer(16)
		dst, _ = NewView(data, 16)
	)
	//
	Copy(src, dst)
	//
	if !slices.Equal(data, []byte{0xff, 0x00}) {
		t.Errorf("expected [255 0], got %v", data)
	}
}

func Test_Copy_05(t *testing.T) {
	// Really hammer the aliasing cases.
	for i := int64(0); i < 1000; i++ {
		checkAliasedCopy(t, 64, i)
	}
}

func TestSlow_Copy_06(t *testing.T) {
	for i := int64(0); i < 1000; i++ {
		checkAliasedCopy(t, 512, i)
	}
}

func Test_Copy_07(t *testing.T) {
	for i := int64(0); i < 1000; i++ {
		checkDisjointCopy(t, 64, i)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// Check an overlapping copy within one buffer against a reference which
// stages the source bits in a temporary non-aliased buffer first.
func checkAliasedCopy(t *testing.T, nbits uint, seed int64) {
	var (
		random = rand.New(rand.NewSource(seed))
		data   = randomBuffer(random, nbits)
		oracle = slices.Clone(data)
	)
	// Pick two arbitrary (overlapping) windows
	srcStart, srcEnd := randomWindow(random, nbits)
	dstStart, dstEnd := randomWindow(random, nbits)
	//
	src, err1 := NewRange(data, nbits, srcStart, srcEnd)
	dst, err2 := NewRange(data, nbits, dstStart, dstEnd)
	//
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected error: %v / %v", err1, err2)
	}
	// Reference: stage through a disjoint copy of the whole buffer
	var (
		refSrc, _ = NewRange(oracle, nbits, srcStart, srcEnd)
		minN      = min(src.Width(), dst.Width())
	)
	//
	staged := make([]bool, minN)
	//
	for i := uint(0); i < minN; i++ {
		staged[i], _ = refSrc.Get(i)
	}
	//
	refDst, _ := NewRange(oracle, nbits, dstStart, dstEnd)
	//
	for i := uint(0); i < minN; i++ {
		_ = refDst.Set(i, staged[i])
	}
	//
	Copy(src, dst)
	//
	if !slices.Equal(data, oracle) {
		t.Errorf("expected %v, got %v (src [%d, %d), dst [%d, %d))",
			oracle, data, srcStart, srcEnd, dstStart, dstEnd)
	}
}

// Check a copy between two separate buffers against a per-bit reference.
func checkDisjointCopy(t *testing.T, nbits uint, seed int64) {
	var (
		random  = rand.New(rand.NewSource(seed))
		srcData = randomBuffer(random, nbits)
		dstData = randomBuffer(random, nbits)
		oracle  = slices.Clone(dstData)
	)
	//
	srcStart, srcEnd := randomWindow(random, nbits)
	dstStart, dstEnd := randomWindow(random, nbits)
	//
	src, _ := NewRange(srcData, nbits, srcStart, srcEnd)
	dst, _ := NewRange(dstData, nbits, dstStart, dstEnd)
	//
	var (
		refSrc, _ = NewRange(srcData, nbits, srcStart, srcEnd)
		refDst, _ = NewRange(oracle, nbits, dstStart, dstEnd)
		minN      = min(src.Width(), dst.Width())
	)
	//
	for i := uint(0); i < minN; i++ {
		b, _ := refSrc.Get(i)
		_ = refDst.Set(i, b)
	}
	//
	Copy(src, dst)
	//
	if !slices.Equal(dstData, oracle) {
		t.Errorf("expected %v, got %v (src [%d, %d), dst [%d, %d))",
			oracle, dstData, srcStart, srcEnd, dstStart, dstEnd)
	}
}

func randomBuffer(random *rand.Rand, nbits uint) []byte {
	data := NewBuffer(nbits)
	random.Read(data)
	//
	return data
}

func randomWindow(random *rand.Rand, nbits uint) (uint, uint) {
	start := uint(random.Intn(int(nbits)))
	end := start + 1 + uint(random.Intn(int(nbits-start)))
	//
	return start, end
}
