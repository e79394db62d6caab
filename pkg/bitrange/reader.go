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

// Reader provides sequential extraction of bit-packed fields from a view,
// where the lowest local indices are read first.  For example, consider a
// view over the bytes [0x9f, 0x05], i.e. the bit sequence:
//
// | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || 8 | 9 | A | B | C | D | E | F |
// +===+===+===+===+===+===+===+===++===+===+===+===+===+===+===+===+
// | 1 | 1 | 1 | 1 | 1 | 0 | 0 | 1 || 1 | 0 | 1 | 0 | 0 | 0 | 0 | 0 |
//
// Reading 7 bits extracts 1,1,1,1,1,0,0 and writes the value 0b0011111
// into the target buffer.
type Reader struct {
	view   View
	offset uint
}

// NewReader constructs a reader positioned at local index 0 of the given
// view.
func NewReader(view View) Reader {
	return Reader{view, 0}
}

// Remaining returns the number of bits left to read.
func (p *Reader) Remaining() uint {
	return p.view.Width() - p.offset
}

// ReadInto reads the next nbits from the view into the given target buffer,
// starting at its bit 0, and returns the number of bytes affected.  The
// trailing partial byte (if any) has its unused bits cleared.  The caller
// must ensure nbits does not exceed Remaining() and that the buffer can
// hold nbits.
func (p *Reader) ReadInto(nbits uint, buf []byte) uint {
	var nread = nbits / 8
	// Determine how many bytes affected.
	if nbits%8 != 0 {
		// Clear final byte
		buf[nread] = 0
		nread++
	}
	//
	if nbits > 0 {
		var (
			src = p.view.slice(p.offset, p.offset+nbits)
			dst = View{buf, uint(len(buf)) * 8, 0, nbits}
		)
		//
		Copy(src, dst)
	}
	//
	p.offset += nbits
	//
	return nread
}
