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
	"errors"
	"math/rand"
	"testing"
)

func Test_Access_00(t *testing.T) {
	// LSB-first masking: bit 0 is the low bit of byte 0
	view, _ := NewView([]byte{0b0000_0001}, 8)
	//
	checkGet(t, view, 0, true)
	checkGet(t, view, 1, false)
	checkGet(t, view, 7, false)
}

func Test_Access_01(t *testing.T) {
	// Bit 15 is the high bit of byte 1
	view, _ := NewView([]byte{0x00, 0b1000_0000}, 16)
	//
	checkGet(t, view, 15, true)
	checkGet(t, view, 8, false)
}

func Test_Access_02(t *testing.T) {
	// Bounded views translate local indices by their start
	data := []byte{0b0000_0000, 0b0000_0001}
	view, _ := NewRange(data, 16, 8, 16)
	//
	checkGet(t, view, 0, true)
	checkGet(t, view, 1, false)
}

func Test_Access_03(t *testing.T) {
	view, _ := NewView(NewBuffer(16), 16)
	//
	if err := view.Set(3, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkGet(t, view, 3, true)
	// Setting false takes the two-step route and must still land false
	if err := view.Set(3, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkGet(t, view, 3, false)
}

func Test_Access_04(t *testing.T) {
	// Flipping twice restores the original bit
	view, _ := NewView(NewBuffer(16), 16)
	random := rand.New(rand.NewSource(2))
	//
	for i := uint(0); i < view.Width(); i++ {
		_ = view.Set(i, random.Intn(2) == 1)
	}
	//
	before := view.String()
	//
	for i := uint(0); i < view.Width(); i++ {
		_ = view.Flip(i)
		_ = view.Flip(i)
	}
	//
	if after := view.String(); before != after {
		t.Errorf("expected %s, got %s (double flip)", before, after)
	}
}

func Test_Access_05(t *testing.T) {
	// Out-of-range errors report the effective classification
	checkOutOfRange(t, 16, 0, 16, 16, Unbounded)
	checkOutOfRange(t, 13, 0, 13, 13, SoftBounded)
	checkOutOfRange(t, 16, 4, 12, 8, Bounded)
}

func Test_Access_06(t *testing.T) {
	// A failed write mutates nothing
	data := []byte{0xaa, 0xaa}
	view, _ := NewRange(data, 16, 4, 12)
	//
	if err := view.Set(8, true); err == nil {
		t.Fatalf("expected error (index 8 of an 8 bit view)")
	}
	//
	if data[0] != 0xaa || data[1] != 0xaa {
		t.Errorf("buffer mutated by failed write: %v", data)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkGet(t *testing.T, view View, i uint, expected bool) {
	actual, err := view.Get(i)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if actual != expected {
		t.Errorf("expected bit %d to be %v", i, expected)
	}
}

func checkOutOfRange(t *testing.T, nbits, start, end, i uint, bounding Bounding) {
	var errRange *OutOfRangeError
	//
	view, err := NewRange(NewBuffer(nbits), nbits, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	_, err = view.Get(i)
	//
	if err == nil {
		t.Errorf("expected error for index %d of a %d bit view", i, view.Width())
	} else if !errors.As(err, &errRange) {
		t.Errorf("expected OutOfRangeError, got %v", err)
	} else if errRange.Bounding != bounding {
		t.Errorf("expected %s classification, got %s", bounding, errRange.Bounding)
	} else if errRange.Width != end-start {
		t.Errorf("expected width %d, got %d", end-start, errRange.Width)
	}
}
