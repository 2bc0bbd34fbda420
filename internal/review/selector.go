// Package review implements the review-selection engine and the in-memory
// state of in-progress review passes.
package review

import (
	"math"
	"math/rand"
	"time"

	"freewise-server/internal/domain"
)

const (
	// DecayTau is the time constant (in days) of the staleness curve.
	DecayTau = 14.0
	// DefaultElapsedDays stands in when a highlight has neither a
	// last-reviewed nor a created-at timestamp.
	DefaultElapsedDays = 30.0
)

// candidate pairs a highlight with its computed score and the key its
// diversity cap is tracked under.
type candidate struct {
	highlight *domain.Highlight
	sourceKey string
	score     float64
}

// Selector picks review batches via score-proportional sampling without
// replacement. It is stateless: every call depends only on its inputs, the
// supplied time and the random source.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a Selector. A nil rng falls back to a time-seeded
// source; tests pass a fixed seed instead.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// TimeScore maps days since the last review to [0, 1): zero immediately
// after a review, approaching 1 as the highlight goes unseen. No highlight
// is ever guaranteed to surface, only increasingly likely.
func TimeScore(elapsedDays float64) float64 {
	if elapsedDays < 0 {
		elapsedDays = 0
	}
	return 1 - math.Exp(-elapsedDays/DecayTau)
}

// Select returns up to n highlights to review, preferring stale highlights
// from highly-weighted books while capping how many one book contributes.
// weights maps book id to review weight; highlights without a book (or whose
// book has no entry) get the default weight. The result is ordered by
// selection. An empty result is normal, never an error.
func (s *Selector) Select(highlights []*domain.Highlight, weights map[string]float64, n int, now time.Time) []*domain.Highlight {
	if n <= 0 {
		return []*domain.Highlight{}
	}

	pool := make([]candidate, 0, len(highlights))
	for _, h := range highlights {
		if h == nil || h.IsDiscarded {
			continue
		}
		w := domain.DefaultReviewWeight
		// Book-less highlights each count as their own source, so a pool of
		// loose highlights is not collectively capped as one book.
		key := "highlight:" + h.ID
		if h.BookID != nil {
			key = "book:" + *h.BookID
			if bw, ok := weights[*h.BookID]; ok {
				w = bw
			}
		}
		if w <= 0 {
			continue
		}
		score := TimeScore(s.elapsedDays(h, now)) * w
		if score <= 0 {
			continue
		}
		pool = append(pool, candidate{highlight: h, sourceKey: key, score: score})
	}
	if len(pool) == 0 {
		return []*domain.Highlight{}
	}

	limit := maxPerSource(n)
	perSource := make(map[string]int)
	selected := make([]*domain.Highlight, 0, n)

	// Capped phase: draw only from sources that have room left.
	for len(selected) < n {
		eligible := make([]int, 0, len(pool))
		for i, c := range pool {
			if perSource[c.sourceKey] < limit {
				eligible = append(eligible, i)
			}
		}
		if len(eligible) == 0 {
			break
		}
		i := s.draw(pool, eligible)
		perSource[pool[i].sourceKey]++
		selected = append(selected, pool[i].highlight)
		pool = append(pool[:i], pool[i+1:]...)
	}

	// The cap exhausted the distinct-source supply before n was reached;
	// relax it and finish from whatever remains.
	for len(selected) < n && len(pool) > 0 {
		all := make([]int, len(pool))
		for i := range pool {
			all[i] = i
		}
		i := s.draw(pool, all)
		selected = append(selected, pool[i].highlight)
		pool = append(pool[:i], pool[i+1:]...)
	}

	return selected
}

// draw picks one index out of eligible, proportionally to candidate score.
// Falls back to a uniform pick when the eligible score mass is zero.
func (s *Selector) draw(pool []candidate, eligible []int) int {
	var total float64
	for _, i := range eligible {
		total += pool[i].score
	}
	if total <= 0 {
		return eligible[s.rng.Intn(len(eligible))]
	}
	r := s.rng.Float64() * total
	for _, i := range eligible {
		r -= pool[i].score
		if r < 0 {
			return i
		}
	}
	return eligible[len(eligible)-1]
}

// elapsedDays resolves days since the last review, falling back to the
// creation time and finally to DefaultElapsedDays.
func (s *Selector) elapsedDays(h *domain.Highlight, now time.Time) float64 {
	ref := h.LastReviewedAt
	if ref == nil {
		ref = h.CreatedAt
	}
	if ref == nil {
		return DefaultElapsedDays
	}
	d := now.Sub(*ref).Hours() / 24
	if d < 0 {
		d = 0
	}
	return d
}

// maxPerSource is the diversity cap: 2 per book for full-size batches,
// 1 for small ones.
func maxPerSource(n int) int {
	if n >= 4 {
		return 2
	}
	return 1
}
