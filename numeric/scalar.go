// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"strconv"
)

// Scalar is a single value tagged with its kind. It is how elements cross the
// public boundary of a matrix (At, Set, determinants, traces) without exposing
// the matrix's Go element type. The zero Scalar has kind Invalid.
type Scalar struct {
	kind Kind
	i    int64   // integer kinds
	f    float64 // float kinds
	d    Dec     // Decimal
}

// Of wraps a typed value.
func Of[T Element](v T) Scalar {
	switch x := any(v).(type) {
	case int8:
		return Scalar{kind: Int8, i: int64(x)}
	case int16:
		return Scalar{kind: Int16, i: int64(x)}
	case int32:
		return Scalar{kind: Int32, i: int64(x)}
	case int64:
		return Scalar{kind: Int64, i: x}
	case float32:
		return Scalar{kind: Float32, f: float64(x)}
	case float64:
		return Scalar{kind: Float64, f: x}
	case Dec:
		return Scalar{kind: Decimal, d: x}
	}

	return Scalar{}
}

// Value unwraps s as T. It fails with ErrUnsupportedKind when s does not
// carry the kind of T.
func Value[T Element](s Scalar) (T, error) {
	if want := KindOf[T](); s.kind != want {
		var zero T
		return zero, fmt.Errorf("%w: have %s, want %s", ErrUnsupportedKind, s.kind, want)
	}

	return unwrap[T](s), nil
}

// unwrap reads the payload as T without checking the tag.
func unwrap[T Element](s Scalar) T {
	var out T
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(s.i)
	case *int16:
		*p = int16(s.i)
	case *int32:
		*p = int32(s.i)
	case *int64:
		*p = s.i
	case *float32:
		*p = float32(s.f)
	case *float64:
		*p = s.f
	case *Dec:
		*p = s.d
	}

	return out
}

// FromInt64 builds a Scalar of kind k holding v (narrow kinds wrap).
func FromInt64(k Kind, v int64) (Scalar, error) {
	switch {
	case k.IsInteger():
		return Convert(Scalar{kind: Int64, i: v}, k)
	case k.IsFloat():
		return Convert(Scalar{kind: Float64, f: float64(v)}, k)
	case k == Decimal:
		return Scalar{kind: Decimal, d: DecFromInt64(v)}, nil
	}

	return Scalar{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
}

// FromFloat64 builds a Scalar of kind k holding v (integer kinds truncate).
func FromFloat64(k Kind, v float64) (Scalar, error) {
	return Convert(Scalar{kind: Float64, f: v}, k)
}

// MustFloat64 is FromFloat64 for kinds known to be valid.
func MustFloat64(k Kind, v float64) Scalar {
	s, err := FromFloat64(k, v)
	if err != nil {
		panic(err)
	}

	return s
}

// Zero returns the additive identity of k.
func Zero(k Kind) (Scalar, error) { return FromInt64(k, 0) }

// One returns the multiplicative identity of k.
func One(k Kind) (Scalar, error) { return FromInt64(k, 1) }

// Convert re-expresses s in kind k. Integer targets truncate toward zero and
// wrap to their width; Decimal sources convert through float64 unless the
// target is Decimal.
func Convert(s Scalar, k Kind) (Scalar, error) {
	if !s.kind.Valid() || !k.Valid() {
		return Scalar{}, fmt.Errorf("%w: convert %s to %s", ErrUnsupportedKind, s.kind, k)
	}
	if s.kind == k {
		return s, nil
	}
	switch k {
	case Int8:
		return Scalar{kind: k, i: int64(int8(s.Int64()))}, nil
	case Int16:
		return Scalar{kind: k, i: int64(int16(s.Int64()))}, nil
	case Int32:
		return Scalar{kind: k, i: int64(int32(s.Int64()))}, nil
	case Int64:
		return Scalar{kind: k, i: s.Int64()}, nil
	case Float32:
		return Scalar{kind: k, f: float64(float32(s.Float64()))}, nil
	case Float64:
		return Scalar{kind: k, f: s.Float64()}, nil
	}
	if s.kind.IsInteger() {
		return Scalar{kind: Decimal, d: DecFromInt64(s.i)}, nil
	}

	return Scalar{kind: Decimal, d: DecFromFloat64(s.f)}, nil
}

// Kind returns the tag of s.
func (s Scalar) Kind() Kind { return s.kind }

// Float64 returns s as float64 (Decimal may round).
func (s Scalar) Float64() float64 {
	switch {
	case s.kind.IsInteger():
		return float64(s.i)
	case s.kind == Decimal:
		return s.d.Float64()
	}

	return s.f
}

// Int64 returns s truncated toward zero.
func (s Scalar) Int64() int64 {
	if s.kind.IsInteger() {
		return s.i
	}

	return int64(s.Float64())
}

// Dec returns s as a decimal.
func (s Scalar) Dec() Dec {
	switch {
	case s.kind == Decimal:
		return s.d
	case s.kind.IsInteger():
		return DecFromInt64(s.i)
	}

	return DecFromFloat64(s.f)
}

// IsZero reports whether s is the additive identity of its kind.
func (s Scalar) IsZero() bool {
	switch {
	case s.kind.IsInteger():
		return s.i == 0
	case s.kind == Decimal:
		return s.d.IsZero()
	}

	return s.f == 0
}

// String formats s without its kind.
func (s Scalar) String() string {
	switch {
	case s.kind.IsInteger():
		return strconv.FormatInt(s.i, 10)
	case s.kind == Float32:
		return strconv.FormatFloat(s.f, 'g', -1, 32)
	case s.kind == Float64:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case s.kind == Decimal:
		return s.d.String()
	}

	return "<invalid>"
}
