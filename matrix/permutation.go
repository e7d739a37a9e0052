// SPDX-License-Identifier: MIT
// Package matrix: permutation matrices.
// Row i of PermutationMatrix(perm) has its single one in column perm[i], so
// P·A lists the rows of A in the order perm.

package matrix

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/densela/numeric"
)

// validatePermutation requires perm to contain each of 0..len(perm)-1 once.
func validatePermutation(perm []int) error {
	if len(perm) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPermutation)
	}
	seen := make([]bool, len(perm))
	for i, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return fmt.Errorf("%w: perm[%d]=%d", ErrInvalidPermutation, i, p)
		}
		seen[p] = true
	}

	return nil
}

// PermutationMatrix builds the n×n matrix with P[i][perm[i]] = 1.
func PermutationMatrix(kind numeric.Kind, perm []int, opts ...Option) (*Dense, error) {
	if err := validatePermutation(perm); err != nil {
		return nil, matrixErrorf(opPermutation, err)
	}
	n := len(perm)
	p, err := NewDense(kind, n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opPermutation, err)
	}
	one, err := numeric.One(kind)
	if err != nil {
		return nil, matrixErrorf(opPermutation, err)
	}
	for i, j := range perm {
		if err = p.e.setScalarAt(i*n+j, one); err != nil {
			return nil, matrixErrorf(opPermutation, err)
		}
	}

	return p, nil
}

// RandomPermutation returns a uniformly shuffled n×n permutation matrix
// drawn from rng. A nil rng is replaced by a freshly seeded generator, so
// pass an explicit one for reproducible results.
func RandomPermutation(kind numeric.Kind, n int, rng *rand.Rand, opts ...Option) (*Dense, []int, error) {
	if n <= 0 {
		return nil, nil, matrixErrorf(opPermutation, ErrBadShape)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	perm := rng.Perm(n)
	p, err := PermutationMatrix(kind, perm, opts...)
	if err != nil {
		return nil, nil, err
	}

	return p, perm, nil
}

// PermutationSign returns +1 for an even permutation and −1 for an odd one,
// counting cycles: sign = (−1)^(n − cycles).
func PermutationSign(perm []int) (int, error) {
	if err := validatePermutation(perm); err != nil {
		return 0, matrixErrorf(opPermutation, err)
	}
	var (
		seen   = make([]bool, len(perm))
		cycles int
	)
	for i := range perm {
		if seen[i] {
			continue
		}
		cycles++
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
		}
	}
	if (len(perm)-cycles)%2 == 1 {
		return -1, nil
	}

	return 1, nil
}
