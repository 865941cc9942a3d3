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

type estimateOptions struct {
	groups       int
	hasGroups    bool
	threshold    float64
	hasThreshold bool
	epsilon      float64
	hasEpsilon   bool
	kMax         int
	hasKMax      bool
}

// EstimateOption configures EstimateSimilarity. Supplying WithThreshold
// requires WithEpsilon (and vice versa), and either requires WithGroups;
// WithKMax independently requires WithGroups but may otherwise stand
// alone for fast-approximation mode (spec.md §4.4.2).
type EstimateOption func(*estimateOptions)

// WithGroups sets g, the number of groups the sketches are partitioned
// into. Required alongside WithThreshold/WithEpsilon or WithKMax.
func WithGroups(g int) EstimateOption {
	return func(o *estimateOptions) {
		o.groups = g
		o.hasGroups = true
	}
}

// WithThreshold sets T, the similarity threshold for early termination.
// Must be supplied together with WithEpsilon.
func WithThreshold(t float64) EstimateOption {
	return func(o *estimateOptions) {
		o.threshold = t
		o.hasThreshold = true
	}
}

// WithEpsilon sets ε, the tolerated probability of an incorrect
// early-exit decision. Must be supplied together with WithThreshold.
func WithEpsilon(eps float64) EstimateOption {
	return func(o *estimateOptions) {
		o.epsilon = eps
		o.hasEpsilon = true
	}
}

// WithKMax enables fast-approximation mode: only the first kMax groups
// are processed. Independent of WithThreshold/WithEpsilon.
func WithKMax(kMax int) EstimateOption {
	return func(o *estimateOptions) {
		o.kMax = kMax
		o.hasKMax = true
	}
}

// EstimateSimilarity estimates the Jaccard similarity of two equal-length
// sketches (spec.md §4.4). With no options it runs simple mode: a full
// slot-by-slot scan. With WithGroups plus WithThreshold/WithEpsilon it
// runs the optimized mode, which may terminate early once the observed
// prefix statistically rules out "Jaccard >= T" or "Jaccard < T" with
// confidence 1-ε. WithKMax alone (no threshold/epsilon) runs the
// fast-approximation mode: only the first kMax groups are scanned.
func EstimateSimilarity(a, b *Sketch, opts ...EstimateOption) (float64, error) {
	if a == nil || b == nil {
		return 0, invalidArgf("estimate similarity: sketch argument is nil")
	}
	if a.Len() != b.Len() {
		return 0, invalidArgf("estimate similarity: length mismatch (%d vs %d)", a.Len(), b.Len())
	}

	options := &estimateOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.hasThreshold != options.hasEpsilon {
		return 0, invalidArgf("estimate similarity: threshold and epsilon must be supplied together")
	}
	needsGroups := options.hasThreshold || options.hasEpsilon || options.hasKMax
	if needsGroups && !options.hasGroups {
		return 0, invalidArgf("estimate similarity: groups must be supplied alongside threshold/epsilon/kMax")
	}

	if !options.hasGroups {
		return simpleEstimate(a, b), nil
	}

	l := a.Len()
	g := options.groups
	if g <= 0 {
		return 0, invalidArgf("estimate similarity: groups must be positive, got %d", g)
	}
	if l%g != 0 {
		return 0, invalidArgf("estimate similarity: sketch length (%d) not divisible by groups (%d)", l, g)
	}
	if options.hasThreshold && (options.threshold < 0 || options.threshold > 1) {
		return 0, invalidArgf("estimate similarity: threshold must be in [0,1], got %v", options.threshold)
	}
	if options.hasEpsilon && (options.epsilon <= 0 || options.epsilon >= 1) {
		return 0, invalidArgf("estimate similarity: epsilon must be in (0,1), got %v", options.epsilon)
	}
	kMax := g
	if options.hasKMax {
		kMax = options.kMax
		if kMax < 1 || kMax > g {
			return 0, invalidArgf("estimate similarity: kMax must be in [1,%d], got %d", g, kMax)
		}
	}

	return optimizedEstimate(a, b, g, kMax, options.hasThreshold, options.threshold, options.epsilon)
}

// simpleEstimate is spec.md §4.4.1: U/N union density, M/U Jaccard
// estimate, with the defined zero-length and all-empty cases.
func simpleEstimate(a, b *Sketch) float64 {
	if a.Len() == 0 {
		return 1.0
	}
	matches, union := matchUnionCounts(a, b)
	if union == 0 {
		return 1.0
	}
	return float64(matches) / float64(union)
}
