// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densela/matrix"
)

// Method names accepted by the facade, in canonical form.
const (
	MethodLU          = "lu"
	MethodLUP         = "lup"
	MethodCholesky    = "cholesky"
	MethodHouseholder = "householder"
	MethodGivens      = "givens"
	MethodGramSchmidt = "gramschmidt"
	MethodCofactor    = "cofactor"
	MethodComatrix    = "comatrix"
	MethodGaussJordan = "gaussjordan"
	MethodJacobi      = "jacobi"
	MethodQRStep      = "qrstep"
	MethodQRIterated  = "qriterated"
)

// canonical lower-cases name and drops '-', '_' and spaces.
func canonical(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}

		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

func unknown(op, name string) error {
	return fmt.Errorf("%s: %w: %q", op, matrix.ErrUnknownMethod, name)
}

// qrMethod maps a canonical QR strategy name.
func qrMethod(key string) (matrix.QRMethod, bool) {
	switch key {
	case MethodHouseholder:
		return matrix.Householder, true
	case MethodGivens:
		return matrix.Givens, true
	case MethodGramSchmidt:
		return matrix.GramSchmidt, true
	}

	return 0, false
}
