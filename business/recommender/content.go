package recommender

import (
	"sort"

	"cineMatch/domain"
)

// contentBased returns the movies most similar to the reference movie by
// content features. The reference itself is excluded; an unknown movie id
// yields an empty list.
func (sn *Snapshot) contentBased(movieID uint, n int) []domain.ContentRecommendation {
	col, ok := sn.movieCol[movieID]
	if !ok {
		return []domain.ContentRecommendation{}
	}

	sims := sn.itemSim[col]

	candidates := make([]int, 0, len(sn.movies)-1)
	for c := range sn.movies {
		if c == col {
			continue
		}
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if sims[candidates[i]] != sims[candidates[j]] {
			return sims[candidates[i]] > sims[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	recs := make([]domain.ContentRecommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, domain.ContentRecommendation{
			MovieSummary:    sn.summary(sn.movies[c]),
			SimilarityScore: roundTo(sims[c], 3),
		})
	}
	return recs
}
