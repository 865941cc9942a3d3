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

// Package goph implements Grouped One-Permutation Hashing (GOPH): a
// single-pass MinHash variant that produces a fixed-length, fixed-bit-
// width signature from a set of 32-bit element hashes, together with bit
// -depth management for that signature and a Jaccard similarity
// estimator with optional probabilistic early termination.
//
// The package does not hash raw documents into element hashes itself —
// that is left to the caller, or to the convenience functions in the
// sibling hashutil package — and it does not store sets, index sketches
// for approximate nearest-neighbor search, or serialize sketches for
// transport.
package goph
