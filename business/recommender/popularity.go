package recommender

import (
	"sort"

	"cineMatch/domain"
)

// Movies with fewer ratings than this never enter the popular list; the
// average would not mean much.
const minRatingCount = 3

// popular aggregates every rating into (mean, count) per movie and ranks by
// mean descending, ties by ascending movie id.
func (sn *Snapshot) popular(n int) []domain.PopularMovie {
	sums := make(map[uint]float64)
	counts := make(map[uint]int)
	for _, r := range sn.ratings {
		if _, ok := sn.movieCol[r.MovieID]; !ok {
			continue
		}
		sums[r.MovieID] += r.Rating
		counts[r.MovieID]++
	}

	type movieStat struct {
		movieID uint
		avg     float64
		count   int
	}
	stats := make([]movieStat, 0, len(sums))
	for id, sum := range sums {
		if counts[id] < minRatingCount {
			continue
		}
		stats = append(stats, movieStat{
			movieID: id,
			avg:     sum / float64(counts[id]),
			count:   counts[id],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].avg != stats[j].avg {
			return stats[i].avg > stats[j].avg
		}
		return stats[i].movieID < stats[j].movieID
	})

	if len(stats) > n {
		stats = stats[:n]
	}

	out := make([]domain.PopularMovie, 0, len(stats))
	for _, st := range stats {
		m := sn.movies[sn.movieCol[st.movieID]]
		out = append(out, domain.PopularMovie{
			MovieSummary: sn.summary(m),
			AvgRating:    roundTo(st.avg, 2),
			RatingCount:  st.count,
		})
	}
	return out
}

// byGenre filters the catalog on an exact, case-sensitive genre match and
// ranks by overall rating descending.
func (sn *Snapshot) byGenre(genre string, n int) []domain.GenreMovie {
	cols := make([]int, 0)
	for c, m := range sn.movies {
		if m.Genre == genre {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return []domain.GenreMovie{}
	}

	sn.sortByOverallRating(cols)
	if len(cols) > n {
		cols = cols[:n]
	}

	out := make([]domain.GenreMovie, 0, len(cols))
	for _, c := range cols {
		rating := sn.movies[c].OverallRating()
		if rating > maxPredictedRating {
			rating = maxPredictedRating
		}
		out = append(out, domain.GenreMovie{
			MovieSummary: sn.summary(sn.movies[c]),
			Rating:       rating,
		})
	}
	return out
}

// userRatings lists a user's own rating history, best-rated first, ties by
// ascending movie id.
func (sn *Snapshot) userRatings(userID uint) []domain.UserRating {
	if _, ok := sn.users[userID]; !ok {
		return []domain.UserRating{}
	}

	out := make([]domain.UserRating, 0)
	for _, r := range sn.ratings {
		if r.UserID != userID {
			continue
		}
		col, ok := sn.movieCol[r.MovieID]
		if !ok {
			continue
		}
		m := sn.movies[col]
		out = append(out, domain.UserRating{
			MovieID: m.ID,
			Title:   m.Title,
			Genre:   m.Genre,
			Year:    m.Year,
			Rating:  r.Rating,
			Review:  r.Review,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].MovieID < out[j].MovieID
	})

	return out
}
