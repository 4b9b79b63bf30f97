package match

import "strings"

// similarityRatio returns the character-sequence similarity of a and b,
// case-insensitive, in [0, 1]. It is the Ratcliff/Obershelp measure:
// 2*M/T, where M is the total length of the matching blocks found by
// recursing around the longest common block, and T the combined length.
// Two empty strings are fully similar.
func similarityRatio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingRunes(ra, rb)) / float64(total)
}

// matchingRunes sums the lengths of all matching blocks: the longest common
// block, plus (recursively) the matching blocks to its left and right.
func matchingRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest contiguous block common to a and b.
// Ties resolve to the earliest block in a, then in b.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := range a {
		for j := range b {
			if a[i] != b[j] {
				curr[j+1] = 0
				continue
			}
			k := prev[j] + 1
			curr[j+1] = k
			if k > size {
				size = k
				ai = i - k + 1
				bi = j - k + 1
			}
		}
		prev, curr = curr, prev
		clear(curr)
	}
	return ai, bi, size
}
