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

func TestSuggestParametersDivisibleByMinGroups(t *testing.T) {
	n, g, err := SuggestParameters(0.1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, g)
	assert.Equal(t, 0, n%g)
	assert.GreaterOrEqual(t, n, 100)
}

func TestSuggestParametersIsUsableByBuildSketch(t *testing.T) {
	n, g, err := SuggestParameters(0.2, 8)
	require.NoError(t, err)
	_, err = BuildSketch(elementSet(1, 2, 3), n, g)
	assert.NoError(t, err)
}

func TestSuggestParametersRejectsInvalidArguments(t *testing.T) {
	_, _, err := SuggestParameters(0, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = SuggestParameters(-0.1, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = SuggestParameters(0.1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSuggestParametersCapsExtremeTargets(t *testing.T) {
	n, g, err := SuggestParameters(1e-9, 4)
	require.NoError(t, err)
	assert.LessOrEqual(t, n, maxSuggestedSlots+4)
	assert.Equal(t, 0, n%g)
}

func TestMinOrdered(t *testing.T) {
	assert.Equal(t, 3, minOrdered(3, 5))
	assert.Equal(t, 3, minOrdered(5, 3))
	assert.Equal(t, 0.5, minOrdered(0.5, 1.5))
}
