// Package ranker pairs scored candidates with explanations and produces the
// final ordered, truncated recommendation list.
package ranker

import (
	"fmt"
	"sort"

	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
)

// TopK is the fixed result size of a recommendation slate.
const TopK = 12

// ScoredCandidate pairs a candidate with its predicted match probability and
// the human-readable reasons shown to the user. Ephemeral: it only exists
// between scoring and response building.
type ScoredCandidate struct {
	Score   float64
	Product *entity.Product
	Why     []string
}

// Rank zips products with their scores positionally (the scorer guarantees
// probas[i] belongs to products[i]), attaches reasons, sorts by score
// descending and truncates to TopK. The sort is stable: candidates with equal
// scores keep catalog-join order.
func Rank(products []*entity.Product, probas []float64, size string) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(products))
	for i, p := range products {
		var score float64
		if i < len(probas) {
			score = probas[i]
		}
		scored = append(scored, ScoredCandidate{
			Score:   score,
			Product: p,
			Why:     ReasonsFor(p, size),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > TopK {
		scored = scored[:TopK]
	}
	return scored
}

// ReasonsFor builds the explanation list for one candidate. Both the single
// item and the batch path go through this function so the two can never
// diverge. Reasons apply in fixed precedence and are not mutually exclusive;
// the fallback fires only when nothing else did.
func ReasonsFor(p *entity.Product, size string) []string {
	var why []string
	if p.HasSize(size) {
		why = append(why, "in stock in your size")
	}
	if p.Price != nil {
		why = append(why, fmt.Sprintf("price ₹%d", *p.Price))
	}
	if len(why) == 0 {
		why = []string{"good predicted match"}
	}
	return why
}
