//go:build !integration

package recommender

import (
	"math"
	"testing"

	"cineMatch/domain"
)

func TestItemSimilarityMatrixProperties(t *testing.T) {
	sn := testSnapshot()

	n := len(sn.movies)
	for i := 0; i < n; i++ {
		if sn.itemSim[i][i] != 1.0 {
			t.Errorf("self-similarity of movie %d = %v, want 1.0", sn.movies[i].ID, sn.itemSim[i][i])
		}
		for j := 0; j < n; j++ {
			v := sn.itemSim[i][j]
			if v < 0 || v > 1+1e-9 {
				t.Errorf("itemSim[%d][%d] = %v, want in [0,1]", i, j, v)
			}
			if math.Abs(v-sn.itemSim[j][i]) > 1e-12 {
				t.Errorf("itemSim not symmetric at (%d,%d): %v vs %v", i, j, v, sn.itemSim[j][i])
			}
		}
	}
}

func TestItemSimilarityPrefersSharedGenre(t *testing.T) {
	sn := testSnapshot()

	drama1 := sn.movieCol[1] // Dark Waters, Drama
	drama2 := sn.movieCol[5] // Long Road, Drama
	horror := sn.movieCol[7] // Night Echo, Horror, no overall rating

	sameGenre := sn.itemSim[drama1][drama2]
	crossGenre := sn.itemSim[drama1][horror]
	if sameGenre <= crossGenre {
		t.Errorf("same-genre similarity %v should exceed cross-genre %v", sameGenre, crossGenre)
	}
}

func TestUserSimilarityMatrixProperties(t *testing.T) {
	sn := testSnapshot()

	n := len(sn.matrix.userIDs)
	for i := 0; i < n; i++ {
		if sn.userSim[i][i] != 1.0 {
			t.Errorf("self-similarity of user %d = %v, want 1.0", sn.matrix.userIDs[i], sn.userSim[i][i])
		}
		for j := 0; j < n; j++ {
			v := sn.userSim[i][j]
			if v < -1-1e-9 || v > 1+1e-9 {
				t.Errorf("userSim[%d][%d] = %v, want in [-1,1]", i, j, v)
			}
			if math.Abs(v-sn.userSim[j][i]) > 1e-12 {
				t.Errorf("userSim not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestUserSimilarityDisjointRatersNearZero(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "A", Genre: "Drama", Year: 2000, Rating: ratingPtr(4)},
		{ID: 2, Title: "B", Genre: "Drama", Year: 2001, Rating: ratingPtr(4)},
	}
	users := []domain.User{
		{ID: 1, Username: "u1"},
		{ID: 2, Username: "u2"},
	}
	ratings := []domain.Rating{
		{ID: 1, UserID: 1, MovieID: 1, Rating: 5},
		{ID: 2, UserID: 2, MovieID: 2, Rating: 5},
	}

	sn := buildSnapshot(movies, users, ratings)
	if got := sn.userSim[0][1]; got != 0 {
		t.Errorf("users with disjoint rating sets: similarity = %v, want 0", got)
	}
}

func TestRatingMatrixMask(t *testing.T) {
	sn := testSnapshot()

	row := sn.matrix.rowByUser[1]
	col := sn.movieCol[1]
	if !sn.matrix.rated[row][col] || sn.matrix.values[row][col] != 5 {
		t.Fatalf("alice's rating of movie 1 not reflected in the matrix")
	}

	unratedCol := sn.movieCol[5]
	if sn.matrix.rated[row][unratedCol] {
		t.Errorf("alice never rated movie 5 but the mask says she did")
	}
	if sn.matrix.values[row][unratedCol] != 0 {
		t.Errorf("unrated cell should carry the zero sentinel")
	}

	// user 4 has no ratings and must not get a row
	if _, ok := sn.matrix.rowByUser[4]; ok {
		t.Errorf("user without ratings should not appear in the matrix")
	}
}

func TestRatingMatrixLastWriteWins(t *testing.T) {
	movies := []domain.Movie{{ID: 1, Title: "A", Genre: "Drama", Year: 2000}}
	users := []domain.User{{ID: 1, Username: "u1"}}
	ratings := []domain.Rating{
		{ID: 1, UserID: 1, MovieID: 1, Rating: 2},
		{ID: 2, UserID: 1, MovieID: 1, Rating: 4},
	}

	sn := buildSnapshot(movies, users, ratings)
	row := sn.matrix.rowByUser[1]
	col := sn.movieCol[1]
	if got := sn.matrix.values[row][col]; got != 4 {
		t.Errorf("duplicate rating pair: got %v, want the last loaded value 4", got)
	}
}
