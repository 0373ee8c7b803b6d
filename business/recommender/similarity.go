package recommender

import (
	"sort"

	"cineMatch/domain"
)

// itemSimilarityMatrix computes pairwise cosine similarity over content
// feature vectors: a one-hot genre encoding concatenated with the movie's
// overall rating (missing rating read as 0). Every feature component is
// non-negative, so the resulting similarities lie in [0,1].
func itemSimilarityMatrix(movies []domain.Movie) [][]float64 {
	genreIdx := make(map[string]int)
	genres := make([]string, 0)
	for _, m := range movies {
		if _, ok := genreIdx[m.Genre]; !ok {
			genreIdx[m.Genre] = 0
			genres = append(genres, m.Genre)
		}
	}
	sort.Strings(genres)
	for i, g := range genres {
		genreIdx[g] = i
	}

	dim := len(genres) + 1
	features := make([][]float64, len(movies))
	for i, m := range movies {
		f := make([]float64, dim)
		f[genreIdx[m.Genre]] = 1.0
		f[dim-1] = m.OverallRating()
		features[i] = f
	}

	return pairwiseCosine(features)
}

// userSimilarityMatrix computes pairwise cosine similarity directly over the
// raw rating rows, unrated cells included as literal zeros. Two users with
// small disjoint rating sets therefore come out near-dissimilar; callers must
// tolerate many near-zero entries on sparse catalogs. The contract here is
// [-1,1] and deliberately distinct from itemSimilarityMatrix.
func userSimilarityMatrix(rows [][]float64) [][]float64 {
	return pairwiseCosine(rows)
}

// pairwiseCosine builds the symmetric similarity matrix with a fixed
// self-similarity of 1, including for all-zero vectors.
func pairwiseCosine(vectors [][]float64) [][]float64 {
	n := len(vectors)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		sim[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := cosineSimilarity(vectors[i], vectors[j])
			sim[i][j] = v
			sim[j][i] = v
		}
	}

	return sim
}
