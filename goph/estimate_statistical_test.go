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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// jaccardPair builds two element slices over a shared universe whose true
// Jaccard similarity is trueJ up to truncating the common block size to an
// integer (e.g. 66/334 for trueJ=0.2, setSize=200), given |A| = |B| = setSize, by
// partitioning the universe into a common block and two disjoint
// per-side blocks sized from the standard |A∩B| = J*(2n-c) identity.
func jaccardPair(rng *rand.Rand, setSize int, trueJ float64, base uint32) ([]uint32, []uint32) {
	n := float64(setSize)
	c := int(trueJ * 2 * n / (1 + trueJ))
	onlyEach := setSize - c

	next := base
	draw := func(k int) []uint32 {
		out := make([]uint32, k)
		for i := range out {
			next++
			out[i] = next*2654435761 + uint32(rng.Uint32()&0xFF)
		}
		return out
	}

	common := draw(c)
	onlyA := draw(onlyEach)
	onlyB := draw(onlyEach)

	a := append(append([]uint32{}, common...), onlyA...)
	b := append(append([]uint32{}, common...), onlyB...)
	return a, b
}

// runTrials averages EstimateSimilarity (simple mode) over many random
// set pairs with a fixed true Jaccard similarity, so the test is
// deterministic across runs. The trial count and tolerance here are a
// reduced-cost regression check of the same unbiasedness property
// spec.md §8's full Monte Carlo validation (10000 trials, ±0.02) targets,
// not a replacement for it.
func runTrials(t *testing.T, trials int, trueJ float64, n, g int) float64 {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	sum := 0.0
	for i := 0; i < trials; i++ {
		elemsA, elemsB := jaccardPair(rng, 200, trueJ, uint32(i*1000))
		sa, err := BuildSketch(elemsA, n, g)
		require.NoError(t, err)
		sb, err := BuildSketch(elemsB, n, g)
		require.NoError(t, err)
		est, err := EstimateSimilarity(sa, sb)
		require.NoError(t, err)
		sum += est
	}
	return sum / float64(trials)
}

// TestEstimateSimilarityIsApproximatelyUnbiasedP8 is property P8.
func TestEstimateSimilarityIsApproximatelyUnbiasedP8(t *testing.T) {
	const trials = 500
	for _, trueJ := range []float64{0.2, 0.5, 0.8} {
		mean := runTrials(t, trials, trueJ, 512, 8)
		if diff := mean - trueJ; diff < -0.04 || diff > 0.04 {
			t.Errorf("true J=%v: mean estimate %v outside tolerance", trueJ, mean)
		}
	}
}

// falseCallRate builds many random set pairs at a fixed true Jaccard
// similarity and drives the optimized early-termination estimator with
// the given threshold/epsilon, returning the fraction of trials that
// produce the given "call" predicate. Used by P9 (false-negative rate:
// optimized mode wrongly returns 0.0) and P10 (false-positive rate:
// optimized mode wrongly returns a value >= T), each over N=128, g=4 the
// way spec.md §8's scenarios size the optimized-mode examples.
func falseCallRate(t *testing.T, seed int64, trials int, trueJ, threshold, epsilon float64, isFalseCall func(est float64) bool) float64 {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	falseCalls := 0
	for i := 0; i < trials; i++ {
		elemsA, elemsB := jaccardPair(rng, 200, trueJ, uint32(i*1000))
		sa, err := BuildSketch(elemsA, 128, 4)
		require.NoError(t, err)
		sb, err := BuildSketch(elemsB, 128, 4)
		require.NoError(t, err)

		est, err := EstimateSimilarity(sa, sb, WithGroups(4), WithThreshold(threshold), WithEpsilon(epsilon))
		require.NoError(t, err)
		if isFalseCall(est) {
			falseCalls++
		}
	}
	return float64(falseCalls) / float64(trials)
}

// TestOptimizedEstimateFalseNegativeRateP9 is property P9: with T well
// below the true J (T=0.3, J≈0.7) and ε=0.05, optimized mode confidently
// dissimilar (returning exactly 0.0) should be rare, at a rate <= ε+0.02.
// The assertion adds a small additional margin on top of that bound,
// since this is a finite-trial (not 10000-trial) sample of the true
// rate, to keep the check itself from flaking on sampling noise alone.
func TestOptimizedEstimateFalseNegativeRateP9(t *testing.T) {
	const trials = 2000
	const epsilon = 0.05
	rate := falseCallRate(t, 7, trials, 0.7, 0.3, epsilon, func(est float64) bool { return est == 0.0 })
	if rate > epsilon+0.04 {
		t.Fatalf("false-negative (confidently-dissimilar) rate %v exceeds epsilon+margin (%v)", rate, epsilon+0.04)
	}
}

// TestOptimizedEstimateFalsePositiveRateP10 is property P10: with T well
// above the true J (T=0.95, J≈0.7) and ε=0.05, optimized mode returning a
// value >= T should be rare, at a rate <= ε+0.02 (plus the same
// finite-trial margin as P9).
func TestOptimizedEstimateFalsePositiveRateP10(t *testing.T) {
	const trials = 2000
	const epsilon = 0.05
	const threshold = 0.95
	rate := falseCallRate(t, 13, trials, 0.7, threshold, epsilon, func(est float64) bool { return est >= threshold })
	if rate > epsilon+0.04 {
		t.Fatalf("false-positive rate %v exceeds epsilon+margin (%v)", rate, epsilon+0.04)
	}
}

// TestFastApproximationMeanAbsoluteErrorP11 is property P11: fast-
// approximation mode (WithKMax(g/2), no threshold/epsilon) has mean
// absolute error versus full mode <= 0.08, for N=128, g=4.
func TestFastApproximationMeanAbsoluteErrorP11(t *testing.T) {
	const n, g = 128, 4
	const trials = 500
	rng := rand.New(rand.NewSource(99))

	sumAbsErr := 0.0
	count := 0
	for _, trueJ := range []float64{0.2, 0.5, 0.8} {
		for trial := 0; trial < trials; trial++ {
			elemsA, elemsB := jaccardPair(rng, 200, trueJ, uint32(trial*1000))
			sa, err := BuildSketch(elemsA, n, g)
			require.NoError(t, err)
			sb, err := BuildSketch(elemsB, n, g)
			require.NoError(t, err)

			full, err := EstimateSimilarity(sa, sb, WithGroups(g), WithKMax(g))
			require.NoError(t, err)
			fast, err := EstimateSimilarity(sa, sb, WithGroups(g), WithKMax(g/2))
			require.NoError(t, err)

			diff := fast - full
			if diff < 0 {
				diff = -diff
			}
			sumAbsErr += diff
			count++
		}
	}

	mae := sumAbsErr / float64(count)
	if mae > 0.08 {
		t.Fatalf("fast-approximation mean absolute error %v exceeds 0.08", mae)
	}
}
