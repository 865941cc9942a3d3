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

// Package hashutil holds the two hand-rolled 32-bit hash primitives the
// GOPH sketch builder needs on every element: the MurmurHash3 x86_32
// avalanche finalizer (fmix32) and a single-uint32-block keyed hash built
// on top of it. Both need to be bit-exact against the spec's constants,
// so they are implemented directly here rather than delegated to a
// general-purpose hashing library, the same way the teacher corpus
// hand-rolls its own murmur3-128 block mixer instead of depending on one
// for its hash-table hashing.
package hashutil

const (
	c1 uint32 = 0xcc9e2d51
	c2 uint32 = 0x1b873593
)

func rotl32(x uint32, r uint) uint32 {
	return (x << r) | (x >> (32 - r))
}

// Fmix32 is the MurmurHash3 x86_32 avalanche finalizer: a xor-shift /
// multiply / xor-shift / multiply / xor-shift mix. All multiplications
// are unsigned 32-bit wrapping multiplication.
func Fmix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x85EBCA6B
	x ^= x >> 13
	x *= 0xC2B2AE35
	x ^= x >> 16
	return x
}

// HashUint32 computes MurmurHash3 x86_32 of a single 4-byte block (the
// little-endian encoding of x) keyed by seed. This gives g independent
// permutations of the same element hash by varying seed per group index.
func HashUint32(x uint32, seed uint32) uint32 {
	h1 := seed

	k1 := x
	k1 *= c1
	k1 = rotl32(k1, 15)
	k1 *= c2
	h1 ^= k1
	h1 = rotl32(h1, 13)
	h1 = h1*5 + 0xe6546b64

	h1 ^= 4 // length in bytes
	return Fmix32(h1)
}
