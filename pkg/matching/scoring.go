package matching

import "strings"

// Scorer provides string similarity scoring for field name matching
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// ExactMatch returns 1.0 if strings are equal, 0.0 otherwise
func (s *Scorer) ExactMatch(a, b string) float64 {
	if a == b {
		return 1.0
	}
	return 0.0
}

// SequenceRatio computes Ratcliff/Obershelp similarity: twice the
// total length of matching blocks over the combined length. Returns a
// value in [0, 1].
func (s *Scorer) SequenceRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	matched := matchingBlocks(a, b)
	return 2.0 * float64(matched) / float64(len(a)+len(b))
}

// matchingBlocks returns the total length of the recursive longest
// common substring decomposition of a and b
func matchingBlocks(a, b string) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}

	total := size
	total += matchingBlocks(a[:ai], b[:bi])
	total += matchingBlocks(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonSubstring finds the longest common substring of a and
// b, returning its start offset in each string and its length
func longestCommonSubstring(a, b string) (int, int, int) {
	bestA, bestB, bestSize := 0, 0, 0

	// lengths[j] holds the common suffix length ending at a[i-1], b[j-1]
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			current := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > bestSize {
					bestSize = lengths[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				lengths[j] = 0
			}
			prev = current
		}
	}

	return bestA, bestB, bestSize
}

// WordOverlap computes the Jaccard overlap of the word sets of a and b
func (s *Scorer) WordOverlap(a, b string) float64 {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	setA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		setA[w] = true
	}
	setB := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		setB[w] = true
	}

	shared := 0
	for w := range setA {
		if setB[w] {
			shared++
		}
	}

	union := len(setA) + len(setB) - shared
	return float64(shared) / float64(union)
}
