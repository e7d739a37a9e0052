// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// decOps implements Arithmetic for Dec with a fixed-precision apd context.
// apd only fails on trapped conditions (division by zero, invalid operation),
// which the kernel contract leaves to callers; they surface as panics.
type decOps struct{ ctx *apd.Context }

func (decOps) Kind() Kind { return Decimal }
func (decOps) Zero() Dec  { return Dec{} }
func (decOps) One() Dec   { return DecFromInt64(1) }

func (o decOps) apply(op func(d, x, y *apd.Decimal) (apd.Condition, error), a, b Dec) Dec {
	d := new(apd.Decimal)
	if _, err := op(d, a.dec(), b.dec()); err != nil {
		panic(fmt.Errorf("numeric: decimal %s %s: %w", a, b, err))
	}

	return Dec{v: d}
}

func (o decOps) Add(a, b Dec) Dec { return o.apply(o.ctx.Add, a, b) }
func (o decOps) Sub(a, b Dec) Dec { return o.apply(o.ctx.Sub, a, b) }
func (o decOps) Mul(a, b Dec) Dec { return o.apply(o.ctx.Mul, a, b) }
func (o decOps) Div(a, b Dec) Dec { return o.apply(o.ctx.Quo, a, b) }

func (decOps) Neg(a Dec) Dec             { return Dec{v: new(apd.Decimal).Neg(a.dec())} }
func (decOps) Abs(a Dec) Dec             { return Dec{v: new(apd.Decimal).Abs(a.dec())} }
func (decOps) Cmp(a, b Dec) int          { return a.Cmp(b) }
func (decOps) Equal(a, b Dec) bool       { return a.Cmp(b) == 0 }
func (decOps) IsZero(a Dec) bool         { return a.IsZero() }
func (decOps) FromInt64(v int64) Dec     { return DecFromInt64(v) }
func (decOps) FromFloat64(v float64) Dec { return DecFromFloat64(v) }
func (decOps) Float64(a Dec) float64     { return a.Float64() }
func (o decOps) Sqrt(a Dec) (Dec, error) { return o.NthRoot(a, 2) }

func (o decOps) NthRoot(a Dec, n int) (Dec, error) {
	if n < 1 {
		return Dec{}, ErrInvalidRoot
	}
	if a.Sign() < 0 {
		return Dec{}, ErrNegativeRadicand
	}
	if a.IsZero() || n == 1 {
		return a, nil
	}

	return newtonRoot[Dec](o, a, n, decRootGuess(a, n)), nil
}

func (o decOps) Pow(a Dec, n int) (Dec, error) { return powOf[Dec](o, a, n) }

// decRootGuess returns 10^(⌊e/n⌋+1) where e is the adjusted exponent of a,
// a power of ten at or above the n-th root whatever the magnitude of a.
func decRootGuess(a Dec, n int) Dec {
	d := a.dec()
	adj := d.NumDigits() + int64(d.Exponent) - 1
	e := adj / int64(n)
	if adj < 0 && adj%int64(n) != 0 {
		e--
	}

	return Dec{v: apd.New(1, int32(e+1))}
}
