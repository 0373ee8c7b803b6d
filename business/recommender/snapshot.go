package recommender

import (
	"sort"

	"cineMatch/domain"
)

// Snapshot is an immutable view of the catalog plus every derived structure
// the recommendation strategies read. A snapshot is built once per refresh;
// nothing mutates it afterwards, so readers never need a lock.
type Snapshot struct {
	movies   []domain.Movie       // ascending id, defines the column order
	movieCol map[uint]int         // movie id -> index into movies
	users    map[uint]domain.User // every catalog user, rated or not
	ratings  []domain.Rating

	matrix  *ratingMatrix
	itemSim [][]float64 // movie x movie, values in [0,1]
	userSim [][]float64 // rated-user x rated-user, values in [-1,1]
}

// ratingMatrix is the dense user-by-movie matrix. Rows exist only for users
// with at least one rating. The rated mask is authoritative for "has this
// cell a rating": the numeric zero in values is never consulted for that.
type ratingMatrix struct {
	userIDs   []uint // ascending, defines the row order
	rowByUser map[uint]int
	values    [][]float64
	rated     [][]bool
}

func buildSnapshot(movies []domain.Movie, users []domain.User, ratings []domain.Rating) *Snapshot {
	sortedMovies := make([]domain.Movie, len(movies))
	copy(sortedMovies, movies)
	sort.Slice(sortedMovies, func(i, j int) bool {
		return sortedMovies[i].ID < sortedMovies[j].ID
	})

	movieCol := make(map[uint]int, len(sortedMovies))
	for i, m := range sortedMovies {
		movieCol[m.ID] = i
	}

	userByID := make(map[uint]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	matrix := buildRatingMatrix(sortedMovies, movieCol, ratings)

	return &Snapshot{
		movies:   sortedMovies,
		movieCol: movieCol,
		users:    userByID,
		ratings:  ratings,
		matrix:   matrix,
		itemSim:  itemSimilarityMatrix(sortedMovies),
		userSim:  userSimilarityMatrix(matrix.values),
	}
}

// buildRatingMatrix pivots the rating list into rows per rated user and one
// column per catalog movie. Duplicate (user, movie) pairs should not exist in
// the source; if they do, the last one loaded wins.
func buildRatingMatrix(movies []domain.Movie, movieCol map[uint]int, ratings []domain.Rating) *ratingMatrix {
	ratedUsers := make(map[uint]struct{})
	for _, r := range ratings {
		if _, ok := movieCol[r.MovieID]; !ok {
			continue // rating for a movie no longer in the catalog
		}
		ratedUsers[r.UserID] = struct{}{}
	}

	userIDs := make([]uint, 0, len(ratedUsers))
	for id := range ratedUsers {
		userIDs = append(userIDs, id)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	rowByUser := make(map[uint]int, len(userIDs))
	for i, id := range userIDs {
		rowByUser[id] = i
	}

	values := make([][]float64, len(userIDs))
	rated := make([][]bool, len(userIDs))
	for i := range userIDs {
		values[i] = make([]float64, len(movies))
		rated[i] = make([]bool, len(movies))
	}

	for _, r := range ratings {
		col, ok := movieCol[r.MovieID]
		if !ok {
			continue
		}
		row := rowByUser[r.UserID]
		values[row][col] = r.Rating
		rated[row][col] = true
	}

	return &ratingMatrix{
		userIDs:   userIDs,
		rowByUser: rowByUser,
		values:    values,
		rated:     rated,
	}
}

func (sn *Snapshot) summary(m domain.Movie) domain.MovieSummary {
	return domain.MovieSummary{
		MovieID:     m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Year:        m.Year,
		Description: m.Description,
		PosterURL:   m.PosterURL,
		TrailerURL:  m.TrailerURL,
	}
}
