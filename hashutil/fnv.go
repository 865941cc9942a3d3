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

import "hash/fnv"

// FNV1a32 hashes data with the FNV-1a 32-bit algorithm. No library in the
// retrieved corpus reimplements FNV-1a, and the standard library's
// hash/fnv is itself the canonical Go implementation, so it is used
// directly rather than hand-rolled.
func FNV1a32(data []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(data) // hash.Hash32.Write never errors
	return h.Sum32()
}
