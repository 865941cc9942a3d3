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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMurmurHash3_32Deterministic(t *testing.T) {
	data := []byte("the quick brown fox")
	assert.Equal(t, MurmurHash3_32(data, 0), MurmurHash3_32(data, 0))
	assert.NotEqual(t, MurmurHash3_32(data, 0), MurmurHash3_32(data, 1))
}

func TestMurmurHash3_32IntMatchesByteEncoding(t *testing.T) {
	x := uint32(0xDEADBEEF)
	assert.Equal(t, MurmurHash3_32([]byte{0xEF, 0xBE, 0xAD, 0xDE}, 7), MurmurHash3_32Int(x, 7))
}

func TestFNV1a32KnownVector(t *testing.T) {
	// FNV-1a 32-bit of the empty string is the offset basis.
	assert.Equal(t, uint32(0x811c9dc5), FNV1a32(nil))
}

func TestXXHash32Deterministic(t *testing.T) {
	data := []byte("near-duplicate detection")
	assert.Equal(t, XXHash32(data, 42), XXHash32(data, 42))
	assert.NotEqual(t, XXHash32(data, 42), XXHash32(data, 43))
}
