package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetDistincts returns the list of distinct elements in v, in order of first appearance.
func GetDistincts[V comparable](v []V) (vd []V) {
	m := map[V]bool{}
	for _, vi := range v {
		if !m[vi] {
			m[vi] = true
			vd = append(vd, vi)
		}
	}
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// SortSliceDescending sorts a slice in place, largest element first.
func SortSliceDescending[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] > s[j]
	})
}

// Product returns the product of the elements of s.
// The product of an empty slice is 1.
func Product[T constraints.Integer](s []T) (p T) {
	p = 1
	for _, si := range s {
		p *= si
	}
	return
}

// BitReverseInPlaceSlice applies an in-place bit-reverse permutation on the input slice.
func BitReverseInPlaceSlice[V any](slice []V, N int) {

	var bit, j int

	for i := 1; i < N; i++ {

		bit = N >> 1

		for j >= bit {
			j -= bit
			bit >>= 1
		}

		j += bit

		if i < j {
			slice[i], slice[j] = slice[j], slice[i]
		}
	}
}
