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
	"math"

	"golang.org/x/exp/constraints"

	"github.com/dsketch/goph/internal/mathutil"
)

func minOrdered[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// maxSuggestedSlots caps SuggestParameters's output the same way a
// Count-Min sketch sizing helper would cap its suggested bucket count,
// so a tiny targetRelativeError cannot return an unreasonably large N.
const maxSuggestedSlots = 1 << 20

// SuggestParameters suggests a (numHashes, numGroups) pair for
// BuildSketch given a desired relative error on the Jaccard estimate and
// a minimum number of groups to partition into. It is grounded in the
// teacher corpus's count.SuggestNumBuckets/count.SuggestNumHashes, which
// solve the analogous sizing problem for Count-Min sketches: relative
// error shrinks roughly as 1/sqrt(numHashes), so numHashes is sized to
// 1/targetRelativeError^2, rounded up to the next power of two and then,
// if that is not already a multiple of minGroups, up to the next multiple
// of minGroups, so N mod G == 0 holds by construction. N is a power of two
// only when minGroups divides that power of two.
//
// This is purely an ergonomic convenience; it does not change
// BuildSketch's contract, and BuildSketch does not call it.
func SuggestParameters(targetRelativeError float64, minGroups int) (n, g int, err error) {
	if targetRelativeError <= 0 {
		return 0, 0, invalidArgf("target relative error must be greater than 0, got %v", targetRelativeError)
	}
	if minGroups <= 0 {
		return 0, 0, invalidArgf("minGroups must be positive, got %d", minGroups)
	}

	raw := int(math.Ceil(1.0 / (targetRelativeError * targetRelativeError)))
	raw = minOrdered(raw, maxSuggestedSlots)

	rounded := mathutil.CeilPowerOf2(raw)
	if r := rounded % minGroups; r != 0 {
		rounded += minGroups - r
	}

	return rounded, minGroups, nil
}
