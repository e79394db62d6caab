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

// Get reads the bit at local index i.
func (v View) Get(i uint) (bool, error) {
	if err := v.check(i); err != nil {
		return false, err
	}
	//
	return v.get(i), nil
}

// Set writes the bit at local index i.  The bit is unconditionally set true
// and then flipped back when b is false, so setting a bit true is one
// memory operation whilst setting it false is two.  Callers for whom this
// asymmetry matters should prefer Flip, which is always one operation.
func (v View) Set(i uint, b bool) error {
	if err := v.check(i); err != nil {
		return err
	}
	//
	v.set(i, b)
	//
	return nil
}

// Flip inverts the bit at local index i.
func (v View) Flip(i uint) error {
	if err := v.check(i); err != nil {
		return err
	}
	//
	v.flip(i)
	//
	return nil
}

// Unchecked accessors, for indices already proven in range.  Every multi-bit
// operation validates once up front and then works through these.

func (v View) get(i uint) bool {
	return v.data[v.page(i)]&v.mask(i) != 0
}

func (v View) set(i uint, b bool) {
	// Set the bit true regardless of its state
	v.data[v.page(i)] |= v.mask(i)
	// Flip it back when false was requested
	if !b {
		v.flip(i)
	}
}

func (v View) flip(i uint) {
	v.data[v.page(i)] ^= v.mask(i)
}
