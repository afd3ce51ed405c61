// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"math/rand"

	"github.com/treebench/treebench/fault"
)

// Distribution - the shape of a generated key sequence
type Distribution string

// supported distributions
//
// SkewedAccess is an access pattern, not a key layout: the stored
// keys are random, only the derived search sequence is Zipf skewed
const (
	RandomOrder  Distribution = "random"
	Sequential   Distribution = "sequential"
	Reversed     Distribution = "reversed"
	SkewedAccess Distribution = "skewed"
)

// Random - count unique keys drawn from [0, 10*count) in random order
func Random(count int, seed int64) ([]int, error) {
	if count <= 0 {
		return nil, fault.ErrDatasetTooSmall
	}
	rng := rand.New(rand.NewSource(seed))
	return rng.Perm(10 * count)[:count], nil
}

// SequentialKeys - keys 0 .. count-1 in ascending order
func SequentialKeys(count int) ([]int, error) {
	if count <= 0 {
		return nil, fault.ErrDatasetTooSmall
	}
	keys := make([]int, count)
	for i := 0; i < count; i += 1 {
		keys[i] = i
	}
	return keys, nil
}

// ReversedKeys - keys count-1 .. 0 in descending order
func ReversedKeys(count int) ([]int, error) {
	if count <= 0 {
		return nil, fault.ErrDatasetTooSmall
	}
	keys := make([]int, count)
	for i := 0; i < count; i += 1 {
		keys[i] = count - 1 - i
	}
	return keys, nil
}

// Generate - dispatch on the distribution name
func Generate(dist Distribution, count int, seed int64) ([]int, error) {
	switch dist {
	case RandomOrder:
		return Random(count, seed)
	case Sequential:
		return SequentialKeys(count)
	case Reversed:
		return ReversedKeys(count)
	default:
		return nil, fault.ErrInvalidDistribution
	}
}

// Sample - count keys picked from the set without replacement
//
// used to derive search and delete sequences from the stored keys
func Sample(keys []int, count int, seed int64) ([]int, error) {
	if count <= 0 || count > len(keys) {
		return nil, fault.ErrDatasetTooSmall
	}
	rng := rand.New(rand.NewSource(seed))
	picked := make([]int, count)
	for i, j := range rng.Perm(len(keys))[:count] {
		picked[i] = keys[j]
	}
	return picked, nil
}

// Skewed - count keys picked from the set following a Zipf
// distribution, so a few hot keys are accessed very often
//
// skew is the Zipf s parameter and must be greater than one; values
// close to one give the strongest skew the generator supports
func Skewed(keys []int, count int, skew float64, seed int64) ([]int, error) {
	if len(keys) == 0 || count <= 0 {
		return nil, fault.ErrDatasetTooSmall
	}
	if skew <= 1.0 {
		return nil, fault.ErrInvalidSkewFactor
	}
	rng := rand.New(rand.NewSource(seed))
	zipf := rand.NewZipf(rng, skew, 1, uint64(len(keys)-1))

	picked := make([]int, count)
	for i := 0; i < count; i += 1 {
		picked[i] = keys[zipf.Uint64()]
	}
	return picked, nil
}
