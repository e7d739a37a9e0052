// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/densela/numeric"

// strassenBlock multiplies two n×n blocks, n a power of two, with the seven
// Strassen products. At or below cfg.strassenThreshold it falls back to the
// direct product. Recursion depth is log₂(n/threshold).
func strassenBlock[T numeric.Element](a, b *block[T], cfg *Options, depth int) *block[T] {
	n := a.r
	if n <= cfg.strassenThreshold {
		return mulBlock(a, b)
	}
	cfg.logger.Debug().Int("size", n).Int("depth", depth).Msg("strassen split")

	h := n / 2
	a11, a12 := a.window(0, 0, h, h), a.window(0, h, h, h)
	a21, a22 := a.window(h, 0, h, h), a.window(h, h, h, h)
	b11, b12 := b.window(0, 0, h, h), b.window(0, h, h, h)
	b21, b22 := b.window(h, 0, h, h), b.window(h, h, h, h)

	add := func(x, y *block[T]) *block[T] { return elementwiseBlock(x, y, ewAdd) }
	sub := func(x, y *block[T]) *block[T] { return elementwiseBlock(x, y, ewSub) }
	rec := func(x, y *block[T]) *block[T] { return strassenBlock(x, y, cfg, depth+1) }

	m1 := rec(add(a11, a22), add(b11, b22))
	m2 := rec(add(a21, a22), b11)
	m3 := rec(a11, sub(b12, b22))
	m4 := rec(a22, sub(b21, b11))
	m5 := rec(add(a11, a12), b22)
	m6 := rec(sub(a21, a11), add(b11, b12))
	m7 := rec(sub(a12, a22), add(b21, b22))

	out := a.like(n, n)
	out.paste(0, 0, add(sub(add(m1, m4), m5), m7))
	out.paste(0, h, add(m3, m5))
	out.paste(h, 0, add(m2, m4))
	out.paste(h, h, add(add(sub(m1, m2), m3), m6))

	return out
}
