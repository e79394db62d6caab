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

// ShiftLeft shifts this view's bits by the given amount towards local index
// 0, clearing the vacated high-index range.  The operation is defined
// purely in terms of local bit ordering, independent of machine byte
// endianness.  Shifting by zero is a no-op; shifting by the view's width or
// more clears every bit.
func (v View) ShiftLeft(by uint) {
	if by == 0 {
		return
	}
	//
	if by >= v.Width() {
		v.Fill(false)
		//
		return
	}
	//
	Copy(v.slice(by, v.Width()), v.slice(0, v.Width()-by))
	v.slice(v.Width()-by, v.Width()).Fill(false)
}

// ShiftRight shifts this view's bits by the given amount towards local
// index width-1, clearing the vacated low-index range.  Boundary behaviour
// matches ShiftLeft.
func (v View) ShiftRight(by uint) {
	if by == 0 {
		return
	}
	//
	if by >= v.Width() {
		v.Fill(false)
		//
		return
	}
	//
	Copy(v.slice(0, v.Width()-by), v.slice(by, v.Width()))
	v.slice(0, by).Fill(false)
}
