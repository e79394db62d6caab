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

import "unsafe"

// Overlaps reports whether two views can alias in memory.  Views over the
// same buffer always overlap.  Otherwise the byte extents actually touched
// by each view are intersected, so separately allocated buffers are never
// reported as aliasing merely for being adjacent in the address space.
// Copy, the combinators and Not all rely on this to pick their iteration
// strategy, and Not additionally relies on disjoint views never being
// misreported as aliasing.
func Overlaps(a, b View) bool {
	if a.base() == b.base() {
		return true
	}
	//
	loA, hiA := a.extent()
	loB, hiB := b.extent()
	//
	return loA < hiB && loB < hiA
}

// same reports whether two views denote the identical window: the same
// buffer with the same bounds.
func same(a, b View) bool {
	return a.base() == b.base() && a.start == b.start && a.end == b.end
}

// extent returns the half-open address range of the bytes addressable
// through this view.
func (v View) extent() (uintptr, uintptr) {
	base := v.base()
	//
	return base + uintptr(v.start/8), base + uintptr((v.end+7)/8)
}

// base returns the address of the view's backing buffer, for aliasing
// checks only.
func (v View) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(v.data)))
}
