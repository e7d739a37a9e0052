// SPDX-License-Identifier: MIT

package numeric_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/numeric"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want numeric.Kind
	}{
		{"int8", numeric.Int8},
		{"INT64", numeric.Int64},
		{" float32 ", numeric.Float32},
		{"double", numeric.Float64},
		{"BigDecimal", numeric.Decimal},
	}
	for _, tc := range cases {
		got, err := numeric.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := numeric.ParseKind("complex128")
	require.True(t, errors.Is(err, numeric.ErrUnsupportedKind))
	require.True(t, errors.Is(err, numeric.ErrParse))
}

func TestKindPredicates(t *testing.T) {
	require.False(t, numeric.Invalid.Valid())
	require.Len(t, numeric.Kinds(), 7)
	for _, k := range numeric.Kinds() {
		require.True(t, k.Valid(), k.String())
	}
	require.True(t, numeric.Int16.IsInteger())
	require.False(t, numeric.Decimal.IsInteger())
	require.True(t, numeric.Float32.IsFloat())
	require.Equal(t, "decimal", numeric.Decimal.String())
	require.Equal(t, "kind(42)", numeric.Kind(42).String())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, numeric.Int8, numeric.KindOf[int8]())
	require.Equal(t, numeric.Int32, numeric.KindOf[int32]())
	require.Equal(t, numeric.Float32, numeric.KindOf[float32]())
	require.Equal(t, numeric.Decimal, numeric.KindOf[numeric.Dec]())
}
