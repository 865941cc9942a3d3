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

import "golang.org/x/sync/errgroup"

// SketchPair is one (A, B) input to BatchEstimateSimilarity.
type SketchPair struct {
	A, B *Sketch
}

// BatchEstimateSimilarity estimates the similarity of many sketch pairs
// concurrently. It exists because spec.md §5 guarantees every Sketch is
// an immutable value that may be read from multiple goroutines without
// synchronization and every estimation call is independent — this simply
// exploits that guarantee with golang.org/x/sync/errgroup rather than
// asking every caller to hand-roll the same fan-out. opts apply to every
// pair identically. The result slice preserves pairs' input order; if any
// pair errors, the first error the errgroup records is returned together
// with a nil result slice.
func BatchEstimateSimilarity(pairs []SketchPair, opts ...EstimateOption) ([]float64, error) {
	results := make([]float64, len(pairs))
	var g errgroup.Group
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			v, err := EstimateSimilarity(pair.A, pair.B, opts...)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
