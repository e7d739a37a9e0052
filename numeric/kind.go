// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"strings"
)

// Kind is the runtime element kind of a matrix.
type Kind uint8

// Supported element kinds. The zero value is Invalid.
const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Decimal
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
	Decimal: "decimal",
}

// Kinds lists every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{Int8, Int16, Int32, Int64, Float32, Float64, Decimal}
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k belongs to the closed set of supported kinds.
func (k Kind) Valid() bool { return k >= Int8 && k <= Decimal }

// IsInteger reports whether k is one of the fixed-width integer kinds.
func (k Kind) IsInteger() bool { return k >= Int8 && k <= Int64 }

// IsFloat reports whether k is a binary floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// ParseKind resolves a kind by name, case-insensitively.
// "double", "float" and "bigdecimal" are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	switch s := strings.ToLower(strings.TrimSpace(name)); s {
	case "double":
		return Float64, nil
	case "float":
		return Float32, nil
	case "bigdecimal", "dec":
		return Decimal, nil
	default:
		for k := Int8; k <= Decimal; k++ {
			if kindNames[k] == s {
				return k, nil
			}
		}
	}

	return Invalid, fmt.Errorf("%w: kind %q: %w", ErrParse, name, ErrUnsupportedKind)
}

// KindOf returns the kind associated with the Go type T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case Dec:
		return Decimal
	}

	return Invalid
}
