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

// Package hashutil offers convenience element-hash functions for callers
// who need to turn raw documents into the 32-bit element hashes that
// package goph consumes. None of this is part of the GOPH core contract
// (spec.md §1 explicitly scopes the element-hash function as an external
// collaborator); it exists purely for ergonomic parity with the rest of
// the corpus, which always ships a convenience hasher next to its
// sketches (see the corpus's own use of github.com/twmb/murmur3 in its
// hll package).
package hashutil

import "github.com/twmb/murmur3"

// MurmurHash3_32 hashes data with the 32-bit MurmurHash3 algorithm under
// the given seed.
func MurmurHash3_32(data []byte, seed uint32) uint32 {
	return murmur3.SeedSum32(seed, data)
}

// MurmurHash3_32Int hashes a single 32-bit integer with the 32-bit
// MurmurHash3 algorithm under the given seed. This is the same hash shape
// package goph's builder uses internally to derive its g per-element
// permutations, exposed here so callers who want to replicate or verify
// sketch construction externally do not need to reimplement it.
func MurmurHash3_32Int(x uint32, seed uint32) uint32 {
	var buf [4]byte
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
	buf[2] = byte(x >> 16)
	buf[3] = byte(x >> 24)
	return murmur3.SeedSum32(seed, buf[:])
}
