// SPDX-License-Identifier: MIT
// Package: builder
//
// id_fn.go — identifier schemes (index → uint64).

package builder

// IDFn maps a dense fixture index to the identifier emitted in links.
type IDFn func(i int) uint64

// SequentialIDs maps i to uint64(i).
func SequentialIDs(i int) uint64 {
	return uint64(i)
}

// OffsetIDs returns an IDFn mapping i to base+i.
func OffsetIDs(base uint64) IDFn {
	return func(i int) uint64 {
		return base + uint64(i)
	}
}

// ScatteredIDs returns an IDFn that spreads indices over the full uint64
// range with the splitmix64 finalizer, which is a bijection; distinct indices
// therefore never collide. Different seeds give different layouts.
func ScatteredIDs(seed uint64) IDFn {
	return func(i int) uint64 {
		z := uint64(i) + seed + 0x9e3779b97f4a7c15
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}
}
