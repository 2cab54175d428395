package textutil

import "strings"

// Similarity computes a Ratcliff/Obershelp ratio between two strings on
// case-folded input: twice the total length of matched subsequence blocks
// divided by the combined length. The result is in [0, 1], symmetric, and
// 1.0 exactly when the case-folded strings are identical.
func Similarity(a, b string) float64 {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))
	total := len(ar) + len(br)
	if total == 0 {
		return 1
	}
	matched := matchedLength(ar, br)
	if matched == 0 {
		return 0
	}
	return 2 * float64(matched) / float64(total)
}

// matchedLength sums the lengths of matching blocks: the longest common
// substring, then recursively the pieces to its left and right.
func matchedLength(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchedLength(a[:ai], b[:bi])
	total += matchedLength(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonBlock finds the earliest longest common substring of a and b,
// returning its start offsets and length.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] holds the match run ending at a[i-1], b[j-1] from the
	// previous row of the classic DP table.
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				run := prev + 1
				lengths[j] = run
				if run > size {
					size = run
					ai = i - run
					bi = j - run
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
