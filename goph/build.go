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

import (
	"iter"

	"github.com/dsketch/goph/internal/hashutil"
)

// DefaultBitDepth is the bit width BuildSketch uses when no WithBitDepth
// option is given.
const DefaultBitDepth = 32

type buildOptions struct {
	width int
}

// BuildOption configures BuildSketch. The functional-options shape
// mirrors the corpus's own UpdateSketchOptionFunc pattern
// (theta/update_sketch.go).
type BuildOption func(*buildOptions)

// WithBitDepth selects the sketch's per-slot bit width. w must be one of
// {2, 4, 8, 16, 32}; the default is 32.
func WithBitDepth(w int) BuildOption {
	return func(o *buildOptions) {
		o.width = w
	}
}

// BuildSketch builds a GOPH signature of length n, partitioned into g
// equal-size groups, from a slice of 32-bit element hashes (spec.md
// §4.2). Duplicate elements are tolerated and treated as one occurrence.
func BuildSketch(elements []uint32, n, g int, opts ...BuildOption) (*Sketch, error) {
	return buildSketch(sliceSeq(elements), n, g, opts...)
}

// BuildSketchSeq is the iterator-based form of BuildSketch, for callers
// who already have their element hashes behind a lazy sequence rather
// than a materialized slice.
func BuildSketchSeq(elements iter.Seq[uint32], n, g int, opts ...BuildOption) (*Sketch, error) {
	return buildSketch(elements, n, g, opts...)
}

// BuildSketchFromAny builds a sketch from a heterogeneous stream, as
// spec.md §4.2's edge cases require: entries that are not representable
// as a 32-bit unsigned integer are skipped rather than rejected, since
// the core is meant to be fed by a thin driver from mixed input. Signed
// integer types are accepted if their value is non-negative and fits in
// 32 bits.
func BuildSketchFromAny(elements []any, n, g int, opts ...BuildOption) (*Sketch, error) {
	return buildSketch(anySeq(elements), n, g, opts...)
}

func sliceSeq(elements []uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, e := range elements {
			if !yield(e) {
				return
			}
		}
	}
}

func anySeq(elements []any) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, e := range elements {
			v, ok := asUint32(e)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func asUint32(e any) (uint32, bool) {
	switch v := e.(type) {
	case uint32:
		return v, true
	case uint64:
		if v > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(v), true
	case uint:
		if uint64(v) > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(v), true
	case int:
		if v < 0 || v > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(v), true
	case int64:
		if v < 0 || v > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(v), true
	case int32:
		if v < 0 {
			return 0, false
		}
		return uint32(v), true
	case uint16:
		return uint32(v), true
	case uint8:
		return uint32(v), true
	case int16:
		if v < 0 {
			return 0, false
		}
		return uint32(v), true
	case int8:
		if v < 0 {
			return 0, false
		}
		return uint32(v), true
	default:
		return 0, false
	}
}

func buildSketch(elements iter.Seq[uint32], n, g int, opts ...BuildOption) (*Sketch, error) {
	options := &buildOptions{width: DefaultBitDepth}
	for _, opt := range opts {
		opt(options)
	}

	if n <= 0 {
		return nil, invalidArgf("numHashes must be positive, got %d", n)
	}
	if g <= 0 {
		return nil, invalidArgf("numGroups must be positive, got %d", g)
	}
	if n%g != 0 {
		return nil, invalidArgf("numHashes (%d) must be divisible by numGroups (%d)", n, g)
	}
	if !isValidWidth(options.width) {
		return nil, invalidArgf("bit depth must be one of {2,4,8,16,32}, got %d", options.width)
	}

	kPrime := n / g
	mask := widthMask(options.width)

	// working holds the running per-slot minimum; present tracks whether a
	// slot has ever been touched. Using a presence bitmap rather than
	// reusing an in-band sentinel-max value is the fix for the
	// sentinel-collision bug spec.md §9 calls out: a legitimate minimum
	// that happens to equal the sentinel can no longer be mistaken for an
	// empty slot.
	working := make([]uint32, n)
	present := make([]bool, n)

	for e := range elements {
		for l := 0; l < g; l++ {
			b := hashutil.HashUint32(e, uint32(l))
			j := b % uint32(kPrime)
			h := secondaryHash(b, mask)
			slot := l*kPrime + int(j)
			if !present[slot] || h < working[slot] {
				working[slot] = h
				present[slot] = true
			}
		}
	}

	out := newSketch(n, g, options.width)
	for i := 0; i < n; i++ {
		if present[i] {
			out.set(i, working[i])
		}
	}
	return out, nil
}

// secondaryHash is the component-A finalizer of spec.md §4.1: it mixes b
// with the MurmurHash3-fmix32 avalanche, masks to the target width, and
// substitutes 1 for a result of 0 so that 0 remains exclusively the
// "empty slot" sentinel.
func secondaryHash(b uint32, mask uint32) uint32 {
	h := hashutil.Fmix32(b) & mask
	if h == 0 {
		return 1
	}
	return h
}
