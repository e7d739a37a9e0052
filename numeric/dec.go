// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// DefaultDecimalPrecision is the number of significant digits kept by the
// Decimal kind (IEEE 754 decimal128).
const DefaultDecimalPrecision = 34

// Dec is an immutable arbitrary-precision decimal value.
// The zero value is 0. Every arithmetic result is a fresh allocation, so a Dec
// may be copied and shared freely.
type Dec struct {
	v *apd.Decimal
}

var decZero apd.Decimal

// NewDec parses a decimal literal such as "3.14", "-2e-5" or "42".
func NewDec(s string) (Dec, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Dec{}, fmt.Errorf("%w: decimal %q: %v", ErrParse, s, err)
	}

	return Dec{v: d}, nil
}

// MustDec is NewDec that panics on malformed input. Intended for literals.
func MustDec(s string) Dec {
	d, err := NewDec(s)
	if err != nil {
		panic(err)
	}

	return d
}

// DecFromInt64 returns the exact decimal value of v.
func DecFromInt64(v int64) Dec { return Dec{v: apd.New(v, 0)} }

// DecFromFloat64 returns the shortest decimal that round-trips to f,
// so 0.1 becomes exactly 0.1 rather than its binary expansion.
// NaN and ±Inf have no decimal representation and map to 0.
func DecFromFloat64(f float64) Dec {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Dec{}
	}
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'g', -1, 64))
	if err != nil {
		return Dec{}
	}

	return Dec{v: d}
}

func (d Dec) dec() *apd.Decimal {
	if d.v == nil {
		return &decZero
	}

	return d.v
}

// Decimal returns a copy of the underlying apd value.
func (d Dec) Decimal() *apd.Decimal { return new(apd.Decimal).Set(d.dec()) }

// Float64 returns the nearest float64; values outside the float64 range
// saturate to ±Inf.
func (d Dec) Float64() float64 {
	// ParseFloat reports ErrRange but still yields ±Inf or ±0, which is the
	// saturation we want.
	f, _ := strconv.ParseFloat(d.dec().String(), 64)

	return f
}

// Cmp compares d and o and returns -1, 0 or +1.
func (d Dec) Cmp(o Dec) int { return d.dec().Cmp(o.dec()) }

// Sign returns -1, 0 or +1.
func (d Dec) Sign() int { return d.dec().Sign() }

// IsZero reports whether d == 0.
func (d Dec) IsZero() bool { return d.dec().IsZero() }

// String formats d in plain (non-exponent) notation without trailing
// fractional zeros, so 0.5000 at any context precision prints as 0.5.
func (d Dec) String() string {
	r, _ := new(apd.Decimal).Reduce(d.dec())

	return r.Text('f')
}
