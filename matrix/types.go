// SPDX-License-Identifier: MIT
// Package matrix: core interfaces and method enums.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densela/numeric"
)

// Matrix is the read-only view consumed by formatting and comparison helpers.
// *Dense is the only implementation in this package.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Kind returns the element kind shared by every entry.
	Kind() numeric.Kind

	// At returns the element at (i,j) or ErrOutOfRange.
	At(i, j int) (numeric.Scalar, error)
}

// QRMethod selects a QR factorization strategy.
type QRMethod uint8

const (
	// Householder eliminates each column with one reflection.
	Householder QRMethod = iota
	// Givens eliminates sub-diagonal entries with plane rotations, bottom-up.
	Givens
	// GramSchmidt orthogonalizes columns one after another.
	GramSchmidt
)

var qrMethodNames = [...]string{
	Householder: "householder",
	Givens:      "givens",
	GramSchmidt: "gramschmidt",
}

// String returns the canonical lower-case name.
func (m QRMethod) String() string {
	if int(m) < len(qrMethodNames) {
		return qrMethodNames[m]
	}

	return fmt.Sprintf("qrmethod(%d)", uint8(m))
}

func (m QRMethod) valid() bool { return m <= GramSchmidt }

// ParseQRMethod resolves a method name, ignoring case, '-', '_' and spaces
// ("Gram-Schmidt" and "gram_schmidt" both select GramSchmidt).
func ParseQRMethod(name string) (QRMethod, error) {
	key := normalizeMethodName(name)
	for m, n := range qrMethodNames {
		if n == key {
			return QRMethod(m), nil
		}
	}

	return 0, fmt.Errorf("%w: qr method %q", ErrUnknownMethod, name)
}

// normalizeMethodName lower-cases name and drops separators.
func normalizeMethodName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}

		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// inverseMethod selects an inversion strategy inside the engine.
type inverseMethod uint8

const (
	invComatrix inverseMethod = iota
	invGaussJordan
	invLU
	invLUP
)
