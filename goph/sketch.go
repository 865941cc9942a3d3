/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package goph

// validWidths enumerates the five supported per-slot bit widths.
var validWidths = [...]int{2, 4, 8, 16, 32}

func isValidWidth(w int) bool {
	for _, v := range validWidths {
		if v == w {
			return true
		}
	}
	return false
}

// widthMask returns 2^w - 1 as a uint32, for w in {2,4,8,16,32}.
func widthMask(w int) uint32 {
	if w >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << uint(w)) - 1
}

// Sketch is an immutable, fixed-length GOPH signature at a fixed bit
// width. It carries its own (N, G, width) so BitWidthOf and Len are O(1)
// and never need to inspect the backing storage. A Sketch is created by
// BuildSketch or Downgrade, is never mutated after that, and may be read
// concurrently from multiple goroutines without synchronization (spec.md
// §5).
//
// Storage backing follows spec.md §3 exactly: widths 16 and 32 use
// natural []uint16 / []uint32 element arrays; widths 2, 4 and 8 all use a
// []uint8 array, with values confined to the low 2/4/8 bits.
type Sketch struct {
	n     int
	g     int
	width int

	narrow []uint8  // used when width is 2, 4 or 8
	wide16 []uint16 // used when width is 16
	wide32 []uint32 // used when width is 32
}

func newSketch(n, g, width int) *Sketch {
	s := &Sketch{n: n, g: g, width: width}
	switch width {
	case 16:
		s.wide16 = make([]uint16, n)
	case 32:
		s.wide32 = make([]uint32, n)
	default:
		s.narrow = make([]uint8, n)
	}
	return s
}

// Len returns the sketch's length N.
func (s *Sketch) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// NumGroups returns the sketch's group count G.
func (s *Sketch) NumGroups() int {
	if s == nil {
		return 0
	}
	return s.g
}

// Width returns the sketch's per-slot bit width.
func (s *Sketch) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

// at returns the slot value at index i as a uint32, regardless of the
// sketch's backing storage width.
func (s *Sketch) at(i int) uint32 {
	switch s.width {
	case 16:
		return uint32(s.wide16[i])
	case 32:
		return s.wide32[i]
	default:
		return uint32(s.narrow[i])
	}
}

// set stores v (already masked to the sketch's width by the caller) at
// slot i.
func (s *Sketch) set(i int, v uint32) {
	switch s.width {
	case 16:
		s.wide16[i] = uint16(v)
	case 32:
		s.wide32[i] = v
	default:
		s.narrow[i] = uint8(v)
	}
}

// BitWidthOf is the bit-depth probe of spec.md §4.3: it returns the
// sketch's declared width, or ok=false if s is not a recognized sketch
// (nil).
func BitWidthOf(s *Sketch) (width int, ok bool) {
	if s == nil {
		return 0, false
	}
	return s.width, true
}
