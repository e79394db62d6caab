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

import "fmt"

// Bounding classifies how a view restricts its underlying buffer: an
// Unbounded view covers a whole byte-aligned extent, a SoftBounded view
// covers a whole extent whose bit count is not a multiple of eight (the
// allocation has trailing unaddressed bits), and a Bounded view covers an
// explicit sub-range.
type Bounding int

const (
	// Unbounded views cover the whole extent, which is byte aligned.
	Unbounded Bounding = iota
	// SoftBounded views cover the whole extent, but the extent is not a
	// multiple of the byte width.
	SoftBounded
	// Bounded views cover an explicit (possibly interior) sub-range.
	Bounded
)

func (b Bounding) String() string {
	switch b {
	case Unbounded:
		return "unbounded"
	case SoftBounded:
		return "soft bounded"
	default:
		return "bounded"
	}
}

// InvalidBoundsError signals an ill-formed view: a zero extent, an empty or
// inverted range, a range exceeding the extent, or a buffer too small to
// back the extent.  This is always a caller programming error and is never
// retried.
type InvalidBoundsError struct {
	NBits uint
	Start uint
	End   uint
	// Length of the offending buffer, or -1 when the buffer is not at
	// issue.
	BufBytes int
}

func (e *InvalidBoundsError) Error() string {
	switch {
	case e.NBits == 0:
		return "nbits cannot be 0"
	case e.Start >= e.End:
		return fmt.Sprintf("start_bit (%d) cannot be >= end_bit (%d)", e.Start, e.End)
	case e.End > e.NBits:
		return fmt.Sprintf("bounds [%d, %d) exceed an extent of %d bits", e.Start, e.End, e.NBits)
	default:
		return fmt.Sprintf("buffer of %d bytes cannot back an extent of %d bits", e.BufBytes, e.NBits)
	}
}

// OutOfRangeError signals a local index outside [0, width) for an otherwise
// valid view.  The effective width and bounding classification are carried
// for diagnostics, since the three classifications have different effective
// widths.
type OutOfRangeError struct {
	Index    uint
	Width    uint
	Bounding Bounding
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d is out of range for a %s view with %d bits to work with",
		e.Index, e.Bounding, e.Width)
}

// InvalidCharacterError signals a character other than '0' or '1' at the
// given position of a text decode.
type InvalidCharacterError struct {
	Char  byte
	Index int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("unrecognised character %q at index %d", e.Char, e.Index)
}
