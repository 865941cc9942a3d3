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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchEstimateSimilarityPreservesOrder(t *testing.T) {
	pairs := make([]SketchPair, 0, 20)
	expected := make([]float64, 0, 20)
	for i := 0; i < 20; i++ {
		a := sketchFromValues(8, []uint32{uint32(i), 1, 2, 3})
		b := sketchFromValues(8, []uint32{uint32(i), 1, 2, 4})
		pairs = append(pairs, SketchPair{A: a, B: b})
		want, err := EstimateSimilarity(a, b)
		require.NoError(t, err)
		expected = append(expected, want)
	}

	got, err := BatchEstimateSimilarity(pairs)
	require.NoError(t, err)
	require.Len(t, got, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i], got[i])
	}
}

func TestBatchEstimateSimilarityPropagatesFirstError(t *testing.T) {
	ok := sketchFromValues(8, []uint32{1, 2, 3, 4})
	bad := sketchFromValues(8, []uint32{1, 2, 3})

	pairs := []SketchPair{
		{A: ok, B: ok},
		{A: ok, B: bad},
	}
	_, err := BatchEstimateSimilarity(pairs)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBatchEstimateSimilarityAppliesOptionsToEveryPair(t *testing.T) {
	a := sketchFromValuesMultiGroup(8, []uint32{1, 2, 3, 4, 5, 6, 7, 8}, 2)
	b := sketchFromValuesMultiGroup(8, []uint32{1, 2, 3, 4, 5, 6, 7, 8}, 2)

	pairs := []SketchPair{{A: a, B: b}, {A: a, B: b}}
	got, err := BatchEstimateSimilarity(pairs, WithGroups(2), WithKMax(1))
	require.NoError(t, err)
	for _, v := range got {
		assert.Equal(t, 1.0, v)
	}
}

func TestBatchEstimateSimilarityEmptyInput(t *testing.T) {
	got, err := BatchEstimateSimilarity(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
