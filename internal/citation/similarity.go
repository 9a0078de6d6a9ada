// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"math"
	"strings"
	"unicode"

	"github.com/mkaraca/citation-engine/pkg/types"
)

// yearBoost is added to the text ratio when both citations carry the same
// year, capped at 1.0. It pushes near-identical texts that differ only in
// minor punctuation over the duplicate threshold.
const yearBoost = 0.10

// Score computes a similarity score in [0, 1] for two citations. Equal
// DOIs are definitive (1.0). Equal normalized titles with the same year
// are very strong (0.95). Otherwise the score is a longest-matching-block
// ratio over the normalized texts, boosted when the years match.
// Score is symmetric: Score(a, b) == Score(b, a).
func Score(a, b types.Citation) float64 {
	if a.DOI != "" && b.DOI != "" && a.DOI == b.DOI {
		return 1.0
	}

	if a.Title != "" && b.Title != "" && a.Year == b.Year &&
		compareKey(a.Title) == compareKey(b.Title) {
		return 0.95
	}

	score := Ratio(a.NormalizedText, b.NormalizedText)

	if a.HasYear() && b.HasYear() && a.Year == b.Year {
		score = math.Min(1.0, score+yearBoost)
	}

	return score
}

// compareKey returns a lowercased copy of s with everything but letters,
// digits, and spaces removed, and runs of whitespace collapsed.
func compareKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Ratio computes a sequence-similarity ratio in [0, 1] between two strings:
// twice the total length of all matching blocks divided by the combined
// length. Matching blocks are found by repeatedly taking the longest common
// substring and recursing into the unmatched pieces on either side.
// Ratio(a, b) == Ratio(b, a) for all inputs.
func Ratio(a, b string) float64 {
	// longestMatch tie-breaks equally long matches by position in its
	// first argument, so the pair is put in canonical order first.
	if b < a {
		a, b = b, a
	}
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchLen(ra, rb)
	return 2 * float64(matched) / float64(total)
}

// matchLen returns the total length of matching blocks between a and b.
func matchLen(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size + matchLen(a[:ai], b[:bi]) + matchLen(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring of a and b, returning
// its start in a, start in b, and length. Among equally long matches the
// earliest in a, then earliest in b, wins.
func longestMatch(a, b []rune) (besti, bestj, bestsize int) {
	// Positions of each rune in b, ascending.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	// lengths[j] is the length of the common substring ending at a[i-1], b[j].
	lengths := make(map[int]int)
	for i, r := range a {
		next := make(map[int]int)
		for _, j := range b2j[r] {
			k := lengths[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		lengths = next
	}
	return besti, bestj, bestsize
}
