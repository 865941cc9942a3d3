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

	"github.com/dsketch/goph/internal/statdist"
)

// tieBreakEpsilon resolves boundary cases in the floor/ceil used by the
// early-exit tail-probability test (spec.md §4.4.2, step 5).
const tieBreakEpsilon = 1e-9

// optimizedEstimate implements spec.md §4.4.2: group-wise early
// termination of the Jaccard estimate using a binomial tail bound. When
// hasThreshold is false this degenerates to the fast-approximation mode
// of spec.md §4.4.2's closing paragraph: it simply scans the first kMax
// groups and returns their prefix estimate, since g itself already
// defaults kMax to g for the plain optimized-mode case.
func optimizedEstimate(a, b *Sketch, g, kMax int, hasThreshold bool, threshold, epsilon float64) (float64, error) {
	l := a.Len()
	kPrime := l / g
	ma := float64(kPrime) * threshold

	matches, union := 0, 0
	for group := 0; group < kMax; group++ {
		start := group * kPrime
		end := start + kPrime

		groupMatches := 0
		for i := start; i < end; i++ {
			av, bv := a.at(i), b.at(i)
			if av != 0 || bv != 0 {
				union++
				if av == bv {
					groupMatches++
				}
			}
		}
		matches += groupMatches

		if group == kMax-1 {
			break
		}
		if !hasThreshold {
			continue
		}

		remaining := kMax - (group + 1)
		mra := (float64(kMax)*ma - float64(matches)) / float64(remaining)

		q, trendingSimilar := tailProbability(kPrime, threshold, mra)
		if q <= epsilon {
			if trendingSimilar {
				processed := (group + 1) * kPrime
				return extrapolate(matches, union, processed, l), nil
			}
			return 0.0, nil
		}
	}

	if union == 0 {
		return 1.0, nil
	}
	return float64(matches) / float64(union), nil
}

// tailProbability computes the one-sided binomial tail probability used
// by the early-exit test. When the running average of matches-needed per
// remaining group (mra) is below the per-group expectation (ma), the
// prefix is "trending similar" and q bounds P(final Jaccard < T); when
// mra is at or above ma, the prefix is "trending dissimilar" and q bounds
// P(final Jaccard >= T).
func tailProbability(kPrime int, threshold, mra float64) (q float64, trendingSimilar bool) {
	ma := float64(kPrime) * threshold
	if mra < ma {
		k := int(math.Floor(mra - tieBreakEpsilon))
		return statdist.CDF(k, kPrime, threshold), true
	}
	k := int(math.Ceil(mra - tieBreakEpsilon))
	return 1.0 - statdist.CDF(k-1, kPrime, threshold), false
}

// extrapolate implements spec.md §4.4.2 step 7a: on a "confidently
// similar" early exit, the prefix's union and match counts are scaled up
// to the full sketch length rather than simply returning 1.0. This is the
// documented choice for the Open Question in spec.md §9 — see DESIGN.md.
func extrapolate(matches, union, processed, total int) float64 {
	if union == 0 {
		return 1.0
	}
	scale := float64(total) / float64(processed)
	fullUnion := float64(union) * scale
	fullMatches := float64(matches) * scale
	if fullUnion == 0 {
		return 1.0
	}
	return fullMatches / fullUnion
}
