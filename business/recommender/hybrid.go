package recommender

import (
	"sort"

	"cineMatch/domain"
)

const (
	hybridCFWeight = 0.7
	hybridCBWeight = 0.3
)

// hybrid blends the collaborative and content lists with fixed weights.
// Without a reference movie only the collaborative ranking is served. With
// one, the two lists are unioned: movies in both get 0.7*cf + 0.3*cb, a
// CF-only movie keeps its full predicted rating, a CB-only movie gets the
// content weight alone.
func (sn *Snapshot) hybrid(userID uint, movieID *uint, n int) []domain.HybridRecommendation {
	cfRecs := sn.collaborative(userID, n)

	if movieID == nil {
		out := make([]domain.HybridRecommendation, 0, len(cfRecs))
		for _, r := range cfRecs {
			out = append(out, domain.HybridRecommendation{
				MovieSummary: r.MovieSummary,
				CFScore:      r.PredictedRating,
				HybridScore:  r.PredictedRating,
			})
		}
		return out
	}

	cbRecs := sn.contentBased(*movieID, n)

	merged := make(map[uint]*domain.HybridRecommendation)
	for _, r := range cfRecs {
		merged[r.MovieID] = &domain.HybridRecommendation{
			MovieSummary: r.MovieSummary,
			CFScore:      r.PredictedRating,
			HybridScore:  r.PredictedRating,
		}
	}
	for _, r := range cbRecs {
		if rec, ok := merged[r.MovieID]; ok {
			rec.CBScore = r.SimilarityScore
			rec.HybridScore = rec.CFScore*hybridCFWeight + r.SimilarityScore*hybridCBWeight
			continue
		}
		merged[r.MovieID] = &domain.HybridRecommendation{
			MovieSummary: r.MovieSummary,
			CBScore:      r.SimilarityScore,
			HybridScore:  r.SimilarityScore * hybridCBWeight,
		}
	}

	out := make([]domain.HybridRecommendation, 0, len(merged))
	for _, rec := range merged {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HybridScore != out[j].HybridScore {
			return out[i].HybridScore > out[j].HybridScore
		}
		return out[i].MovieID < out[j].MovieID
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
