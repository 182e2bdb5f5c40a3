package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	rankExact = iota
	rankPrefix
	rankContains
	rankFuzzy
)

type scored struct {
	c    Currency
	rank int
	dist int
	pos  int
}

// Search filters the catalog for a picker query. An empty query returns the
// whole catalog in declared order. Matches rank exact code first, then code
// prefix, then substring of code or name, then typo-tolerant matches.
func Search(query string) []Currency {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}

	var hits []scored
	for i, c := range currencies {
		rank, dist, ok := score(q, c)
		if !ok {
			continue
		}
		hits = append(hits, scored{c: c, rank: rank, dist: dist, pos: i})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].pos < hits[j].pos
	})

	out := make([]Currency, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.c)
	}
	return out
}

func score(q string, c Currency) (rank, dist int, ok bool) {
	code := strings.ToLower(c.Code)
	name := strings.ToLower(c.Name)
	switch {
	case code == q:
		return rankExact, 0, true
	case strings.HasPrefix(code, q):
		return rankPrefix, 0, true
	case strings.Contains(code, q) || strings.Contains(name, q):
		return rankContains, 0, true
	}

	best := levenshtein.ComputeDistance(q, code)
	for _, word := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(q, word); d < best {
			best = d
		}
	}
	if best <= maxTypos(q) {
		return rankFuzzy, best, true
	}
	return 0, 0, false
}

// maxTypos allows one edit per four runes, at least one.
func maxTypos(q string) int {
	n := len([]rune(q)) / 4
	if n < 1 {
		return 1
	}
	return n
}
