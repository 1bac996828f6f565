// Package match pairs binary descriptors across two images by Hamming
// distance.
package match

import (
	"cmp"
	"slices"

	"github.com/gogpu/brief"
)

// Match links descriptor Query of the first set to descriptor Train of the
// second.
type Match struct {
	Query, Train int

	// Distance is the Hamming distance between the two descriptors.
	Distance int

	// Confidence is 1 - Distance/bits.
	Confidence float32
}

// BruteForce returns, for every query descriptor, the nearest train
// descriptor. Ties go to the lowest train index. The result is empty when
// either set is empty or the descriptor sizes differ.
func BruteForce(query, train *brief.Descriptors) []Match {
	nq, nt := query.Rows(), train.Rows()
	if nq == 0 || nt == 0 || query.Size != train.Size {
		return nil
	}
	bits := float32(query.Size * 8)

	matches := make([]Match, nq)
	for i := 0; i < nq; i++ {
		q := query.Row(i)
		best, bestJ := query.Size*8+1, 0
		for j := 0; j < nt; j++ {
			if d := brief.Distance(q, train.Row(j)); d < best {
				best, bestJ = d, j
			}
		}
		matches[i] = Match{
			Query:      i,
			Train:      bestJ,
			Distance:   best,
			Confidence: 1 - float32(best)/bits,
		}
	}
	return matches
}

// Reciprocal keeps only matches that are mutual nearest neighbours: the
// query's best train descriptor has the query as its own best match.
func Reciprocal(a, b *brief.Descriptors) []Match {
	forward := BruteForce(a, b)
	if len(forward) == 0 {
		return nil
	}
	backward := BruteForce(b, a)

	var out []Match
	for _, m := range forward {
		if backward[m.Train].Train == m.Query {
			out = append(out, m)
		}
	}
	return out
}

// WithinDistance returns the matches at most maxDistance apart, sorted by
// increasing distance. The input is not modified.
func WithinDistance(matches []Match, maxDistance int) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Distance <= maxDistance {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(x, y Match) int {
		return cmp.Compare(x.Distance, y.Distance)
	})
	return out
}
