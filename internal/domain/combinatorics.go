package domain

// nextMultiset advances idx, a non-decreasing tuple over [0, n), to the next
// combination with repetition in lexicographic order. It returns false once
// idx was the last combination.
func nextMultiset(idx []int, n int) bool {
	i := len(idx) - 1
	for i >= 0 && idx[i] == n-1 {
		i--
	}

	if i < 0 {
		return false
	}

	idx[i]++
	for j := i + 1; j < len(idx); j++ {
		idx[j] = idx[i]
	}

	return true
}

// nextPermutation rearranges p into the next lexicographic permutation.
// Equal elements are never swapped with each other, so starting from a sorted
// multiset every distinct ordering is produced exactly once.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}

	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}

	p[i], p[j] = p[j], p[i]

	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
