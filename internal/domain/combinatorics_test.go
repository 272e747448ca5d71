package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextMultiset(t *testing.T) {
	idx := []int{0, 0}
	got := [][]int{append([]int(nil), idx...)}

	for nextMultiset(idx, 3) {
		got = append(got, append([]int(nil), idx...))
	}

	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2}}, got)
}

func TestNextMultiset_Empty(t *testing.T) {
	assert.False(t, nextMultiset([]int{}, 3))
	assert.False(t, nextMultiset([]int{0}, 1))
}

func TestNextPermutation_DuplicateAware(t *testing.T) {
	p := []int{0, 0, 1}
	got := [][]int{append([]int(nil), p...)}

	for nextPermutation(p) {
		got = append(got, append([]int(nil), p...))
	}

	assert.Equal(t, [][]int{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, got)
}

func TestNextPermutation_Counts(t *testing.T) {
	tests := []struct {
		multiset []int
		want     int
	}{
		{[]int{}, 1},
		{[]int{2}, 1},
		{[]int{1, 1, 1}, 1},
		{[]int{0, 1, 2}, 6},
		{[]int{0, 0, 1, 1}, 6},
	}

	for _, tt := range tests {
		p := append([]int(nil), tt.multiset...)
		count := 1

		for nextPermutation(p) {
			count++
		}

		assert.Equal(t, tt.want, count, "multiset %v", tt.multiset)
	}
}
