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

// ByteSize returns the number of bytes required to back an extent of nbits.
// An extent is never smaller than one byte, hence ByteSize(0) == 1.
func ByteSize(nbits uint) uint {
	if nbits <= 8 {
		return 1
	}
	//
	return (nbits + 7) / 8
}

// NewBuffer allocates a zero-filled buffer large enough to back an extent
// of nbits.  Ownership of the buffer rests entirely with the caller; the
// library holds no reference to it across calls.
func NewBuffer(nbits uint) []byte {
	return make([]byte, ByteSize(nbits))
}
