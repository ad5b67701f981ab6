package similarity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

// DefaultLexicalThreshold is the minimum normalized Levenshtein
// similarity for a pair to be reported as a duplicate candidate.
const DefaultLexicalThreshold = 0.85

// LexicalDuplicates finds near-duplicate nodes by normalized Levenshtein
// similarity over lowercased labels. Nodes are only compared within the
// same type, and the result is sorted by similarity descending.
func LexicalDuplicates(g common.Graph, threshold float64) []common.DuplicateCandidate {
	if threshold <= 0 {
		threshold = DefaultLexicalThreshold
	}

	byType := make(map[common.NodeType][]common.Node)
	for _, n := range g.Nodes {
		byType[n.Type] = append(byType[n.Type], n)
	}

	var candidates []common.DuplicateCandidate
	for _, group := range byType {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a := []rune(strings.ToLower(group[i].Label))
				b := []rune(strings.ToLower(group[j].Label))

				longer := len(a)
				if len(b) > longer {
					longer = len(b)
				}
				if longer == 0 {
					continue
				}

				dist := levenshtein(a, b)
				sim := float64(longer-dist) / float64(longer)
				if sim >= threshold {
					candidates = append(candidates, common.DuplicateCandidate{
						NodeA:      group[i],
						NodeB:      group[j],
						Similarity: sim,
						Reason:     fmt.Sprintf("String similarity: %.0f%%", sim*100),
					})
				}
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		return candidates[i].NodeA.ID < candidates[j].NodeA.ID
	})
	return candidates
}

// levenshtein returns the edit distance between two strings, computed
// over runes with a rolling two-row matrix. Polish labels carry
// multibyte diacritics, so a byte-level distance would overcount them.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
