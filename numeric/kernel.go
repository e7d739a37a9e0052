// SPDX-License-Identifier: MIT

package numeric

import "fmt"

// kernel is Arithmetic lifted to Scalars; one instance per kind.
type kernel interface {
	add(a, b Scalar) Scalar
	sub(a, b Scalar) Scalar
	mul(a, b Scalar) Scalar
	div(a, b Scalar) Scalar
	neg(a Scalar) Scalar
	abs(a Scalar) Scalar
	cmp(a, b Scalar) int
	root(a Scalar, n int) (Scalar, error)
	pow(a Scalar, n int) (Scalar, error)
}

type lifted[T Element] struct{ ar Arithmetic[T] }

func (l lifted[T]) add(a, b Scalar) Scalar { return Of(l.ar.Add(unwrap[T](a), unwrap[T](b))) }
func (l lifted[T]) sub(a, b Scalar) Scalar { return Of(l.ar.Sub(unwrap[T](a), unwrap[T](b))) }
func (l lifted[T]) mul(a, b Scalar) Scalar { return Of(l.ar.Mul(unwrap[T](a), unwrap[T](b))) }
func (l lifted[T]) div(a, b Scalar) Scalar { return Of(l.ar.Div(unwrap[T](a), unwrap[T](b))) }
func (l lifted[T]) neg(a Scalar) Scalar    { return Of(l.ar.Neg(unwrap[T](a))) }
func (l lifted[T]) abs(a Scalar) Scalar    { return Of(l.ar.Abs(unwrap[T](a))) }
func (l lifted[T]) cmp(a, b Scalar) int    { return l.ar.Cmp(unwrap[T](a), unwrap[T](b)) }

func (l lifted[T]) root(a Scalar, n int) (Scalar, error) {
	v, err := l.ar.NthRoot(unwrap[T](a), n)
	if err != nil {
		return Scalar{}, err
	}

	return Of(v), nil
}

func (l lifted[T]) pow(a Scalar, n int) (Scalar, error) {
	v, err := l.ar.Pow(unwrap[T](a), n)
	if err != nil {
		return Scalar{}, err
	}

	return Of(v), nil
}

func kernelFor(k Kind) (kernel, error) {
	switch k {
	case Int8:
		return lifted[int8]{For[int8]()}, nil
	case Int16:
		return lifted[int16]{For[int16]()}, nil
	case Int32:
		return lifted[int32]{For[int32]()}, nil
	case Int64:
		return lifted[int64]{For[int64]()}, nil
	case Float32:
		return lifted[float32]{For[float32]()}, nil
	case Float64:
		return lifted[float64]{For[float64]()}, nil
	case Decimal:
		return lifted[Dec]{For[Dec]()}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
}

// pair resolves the kernel for a binary operation; both operands must
// share one valid kind.
func pair(a, b Scalar) (kernel, error) {
	if a.kind != b.kind {
		return nil, fmt.Errorf("%w: %s with %s", ErrUnsupportedKind, a.kind, b.kind)
	}

	return kernelFor(a.kind)
}

// Add returns a + b.
func Add(a, b Scalar) (Scalar, error) {
	k, err := pair(a, b)
	if err != nil {
		return Scalar{}, err
	}

	return k.add(a, b), nil
}

// Sub returns a - b.
func Sub(a, b Scalar) (Scalar, error) {
	k, err := pair(a, b)
	if err != nil {
		return Scalar{}, err
	}

	return k.sub(a, b), nil
}

// Mul returns a * b.
func Mul(a, b Scalar) (Scalar, error) {
	k, err := pair(a, b)
	if err != nil {
		return Scalar{}, err
	}

	return k.mul(a, b), nil
}

// Div returns a / b. Integer and Decimal kinds reject a zero divisor with
// ErrDivisionByZero; float kinds follow IEEE-754.
func Div(a, b Scalar) (Scalar, error) {
	k, err := pair(a, b)
	if err != nil {
		return Scalar{}, err
	}
	if b.IsZero() && !b.kind.IsFloat() {
		return Scalar{}, ErrDivisionByZero
	}

	return k.div(a, b), nil
}

// Neg returns -a.
func Neg(a Scalar) (Scalar, error) {
	k, err := kernelFor(a.kind)
	if err != nil {
		return Scalar{}, err
	}

	return k.neg(a), nil
}

// Abs returns |a|.
func Abs(a Scalar) (Scalar, error) {
	k, err := kernelFor(a.kind)
	if err != nil {
		return Scalar{}, err
	}

	return k.abs(a), nil
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func Cmp(a, b Scalar) (int, error) {
	k, err := pair(a, b)
	if err != nil {
		return 0, err
	}

	return k.cmp(a, b), nil
}

// Equal reports a == b under the kind's native equality.
func Equal(a, b Scalar) (bool, error) {
	c, err := Cmp(a, b)

	return err == nil && c == 0, err
}

// Sqrt returns the square root of a (floor root for integer kinds).
func Sqrt(a Scalar) (Scalar, error) { return NthRoot(a, 2) }

// NthRoot returns the n-th root of a (floor root for integer kinds).
func NthRoot(a Scalar, n int) (Scalar, error) {
	k, err := kernelFor(a.kind)
	if err != nil {
		return Scalar{}, err
	}

	return k.root(a, n)
}

// Pow returns a^n for an integer exponent.
func Pow(a Scalar, n int) (Scalar, error) {
	k, err := kernelFor(a.kind)
	if err != nil {
		return Scalar{}, err
	}

	return k.pow(a, n)
}
