package recommender

import (
	"sort"

	"cineMatch/domain"
)

const (
	neighborCount       = 5
	preferredGenreBoost = 1.3
	maxPredictedRating  = 5.0
)

// collaborative walks a fixed fallback chain so that a logically valid but
// data-sparse user always gets an answer instead of an error:
//
//  1. unknown user            -> empty list
//  2. user has no ratings     -> top catalog movies in the preferred genre
//  3. neighbor predictions    -> similarity-weighted average over top-5 users
//  4. no predictions produced -> user's own best-rated genres
//  5. still nothing           -> top unrated movies in the preferred genre
func (sn *Snapshot) collaborative(userID uint, n int) []domain.CollaborativeRecommendation {
	user, ok := sn.users[userID]
	if !ok {
		return []domain.CollaborativeRecommendation{}
	}

	row, hasRatings := sn.matrix.rowByUser[userID]
	if !hasRatings {
		return sn.coldStart(user, n)
	}

	scores := sn.neighborPredictions(user, row)
	if len(scores) == 0 {
		scores = sn.ownGenreFallback(user, row, n)
	}
	if len(scores) == 0 {
		scores = sn.preferredGenreFallback(user, row, n)
	}

	cols := rankScores(scores, n)

	recs := make([]domain.CollaborativeRecommendation, 0, len(cols))
	for _, c := range cols {
		recs = append(recs, domain.CollaborativeRecommendation{
			MovieSummary:    sn.summary(sn.movies[c]),
			PredictedRating: roundTo(scores[c], 2),
		})
	}
	return recs
}

// coldStart serves a user with zero rating history: best overall movies in
// their preferred genre, falling back to the whole catalog when the genre is
// empty.
func (sn *Snapshot) coldStart(user domain.User, n int) []domain.CollaborativeRecommendation {
	candidates := make([]int, 0)
	for c, m := range sn.movies {
		if m.Genre == user.PreferredGenre {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = make([]int, len(sn.movies))
		for c := range sn.movies {
			candidates[c] = c
		}
	}

	sn.sortByOverallRating(candidates)
	if len(candidates) > n {
		candidates = candidates[:n]
	}

	recs := make([]domain.CollaborativeRecommendation, 0, len(candidates))
	for _, c := range candidates {
		pred := sn.movies[c].OverallRating()
		if pred > maxPredictedRating {
			pred = maxPredictedRating
		}
		recs = append(recs, domain.CollaborativeRecommendation{
			MovieSummary:    sn.summary(sn.movies[c]),
			PredictedRating: roundTo(pred, 1),
		})
	}
	return recs
}

type neighbor struct {
	row int
	sim float64
}

// topNeighbors picks the most similar rated users, excluding the target row.
// Ties break on ascending user id so the selection is total and reproducible.
func (sn *Snapshot) topNeighbors(row, k int) []neighbor {
	sims := sn.userSim[row]

	candidates := make([]neighbor, 0, len(sims)-1)
	for r, s := range sims {
		if r == row {
			continue
		}
		candidates = append(candidates, neighbor{row: r, sim: s})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].sim != candidates[j].sim {
			return candidates[i].sim > candidates[j].sim
		}
		return sn.matrix.userIDs[candidates[i].row] < sn.matrix.userIDs[candidates[j].row]
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

// neighborPredictions predicts ratings for every movie the target user has
// not rated, as the similarity-weighted average of neighbor ratings. A
// neighbor who has not rated the movie contributes nothing: the unrated
// sentinel is excluded from both the sum and the weight.
func (sn *Snapshot) neighborPredictions(user domain.User, row int) map[int]float64 {
	neighbors := sn.topNeighbors(row, neighborCount)

	scores := make(map[int]float64)
	for col := range sn.movies {
		if sn.matrix.rated[row][col] {
			continue
		}

		sum := 0.0
		weight := 0.0
		for _, nb := range neighbors {
			if !sn.matrix.rated[nb.row][col] {
				continue
			}
			sum += nb.sim * sn.matrix.values[nb.row][col]
			weight += nb.sim
		}
		if weight <= 0 {
			continue
		}

		pred := sum / weight
		if sn.movies[col].Genre == user.PreferredGenre {
			pred *= preferredGenreBoost
		}
		if pred > maxPredictedRating {
			pred = maxPredictedRating
		}
		scores[col] = pred
	}

	return scores
}

// ownGenreFallback ranks the genres the user has rated by their mean given
// rating and fills candidates genre by genre with the catalog's best unrated
// movies, using the genre mean as the predicted rating.
func (sn *Snapshot) ownGenreFallback(user domain.User, row, n int) map[int]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for col := range sn.movies {
		if !sn.matrix.rated[row][col] {
			continue
		}
		g := sn.movies[col].Genre
		sums[g] += sn.matrix.values[row][col]
		counts[g]++
	}

	type genreMean struct {
		genre string
		mean  float64
	}
	means := make([]genreMean, 0, len(sums))
	for g, sum := range sums {
		means = append(means, genreMean{genre: g, mean: sum / float64(counts[g])})
	}
	sort.Slice(means, func(i, j int) bool {
		if means[i].mean != means[j].mean {
			return means[i].mean > means[j].mean
		}
		return means[i].genre < means[j].genre
	})

	scores := make(map[int]float64)
	for _, gm := range means {
		candidates := make([]int, 0)
		for col, m := range sn.movies {
			if m.Genre == gm.genre && !sn.matrix.rated[row][col] {
				candidates = append(candidates, col)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		sn.sortByOverallRating(candidates)
		if len(candidates) > n {
			candidates = candidates[:n]
		}

		pred := gm.mean
		if pred > maxPredictedRating {
			pred = maxPredictedRating
		}
		for _, c := range candidates {
			scores[c] = pred
		}

		if len(scores) >= n {
			break
		}
	}

	return scores
}

// preferredGenreFallback is the last resort: best unrated movies in the
// user's preferred genre scored by their own overall rating.
func (sn *Snapshot) preferredGenreFallback(user domain.User, row, n int) map[int]float64 {
	candidates := make([]int, 0)
	for col, m := range sn.movies {
		if m.Genre == user.PreferredGenre && !sn.matrix.rated[row][col] {
			candidates = append(candidates, col)
		}
	}

	sn.sortByOverallRating(candidates)
	if len(candidates) > n {
		candidates = candidates[:n]
	}

	scores := make(map[int]float64)
	for _, c := range candidates {
		pred := sn.movies[c].OverallRating()
		if pred > maxPredictedRating {
			pred = maxPredictedRating
		}
		scores[c] = pred
	}
	return scores
}

// sortByOverallRating orders movie columns by catalog rating descending,
// ties by ascending movie id.
func (sn *Snapshot) sortByOverallRating(cols []int) {
	sort.Slice(cols, func(i, j int) bool {
		ri := sn.movies[cols[i]].OverallRating()
		rj := sn.movies[cols[j]].OverallRating()
		if ri != rj {
			return ri > rj
		}
		return sn.movies[cols[i]].ID < sn.movies[cols[j]].ID
	})
}

// rankScores orders scored columns by score descending, ties by ascending
// movie id, and keeps the top n.
func rankScores(scores map[int]float64, n int) []int {
	cols := make([]int, 0, len(scores))
	for c := range scores {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool {
		if scores[cols[i]] != scores[cols[j]] {
			return scores[cols[i]] > scores[cols[j]]
		}
		return cols[i] < cols[j]
	})
	if len(cols) > n {
		cols = cols[:n]
	}
	return cols
}
