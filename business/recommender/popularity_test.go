//go:build !integration

package recommender

import (
	"math"
	"testing"
)

func TestPopularDropsSparseMoviesAndSorts(t *testing.T) {
	sn := testSnapshot()

	out := sn.popular(10)
	for i, p := range out {
		if p.RatingCount < minRatingCount {
			t.Errorf("movie %d has %d ratings, below the minimum %d", p.MovieID, p.RatingCount, minRatingCount)
		}
		if i > 0 && out[i].AvgRating > out[i-1].AvgRating {
			t.Errorf("popular list not sorted by average descending")
		}
	}

	// only movie 1 has three ratings in the fixture (5, 4, 5)
	if len(out) != 1 {
		t.Fatalf("got %d popular movies, want 1", len(out))
	}
	if out[0].MovieID != 1 || math.Abs(out[0].AvgRating-4.67) > 1e-9 {
		t.Errorf("got movie %d avg %v, want movie 1 at 4.67", out[0].MovieID, out[0].AvgRating)
	}
	if out[0].RatingCount != 3 {
		t.Errorf("got rating count %d, want 3", out[0].RatingCount)
	}
}

func TestByGenreFiltersAndSorts(t *testing.T) {
	sn := testSnapshot()

	out := sn.byGenre("Drama", 10)
	if len(out) != 3 {
		t.Fatalf("got %d Drama movies, want 3", len(out))
	}
	wantIDs := []uint{5, 1, 6}
	for i, m := range out {
		if m.Genre != "Drama" {
			t.Errorf("movie %d has genre %q, want Drama", m.MovieID, m.Genre)
		}
		if m.MovieID != wantIDs[i] {
			t.Errorf("position %d = movie %d, want %d", i, m.MovieID, wantIDs[i])
		}
	}
}

func TestByGenreIsCaseSensitive(t *testing.T) {
	sn := testSnapshot()

	if out := sn.byGenre("drama", 10); len(out) != 0 {
		t.Errorf("lowercase genre matched %d movies, want exact matching only", len(out))
	}
	if out := sn.byGenre("Western", 10); len(out) != 0 {
		t.Errorf("unknown genre returned %d movies, want 0", len(out))
	}
}

func TestUserRatingsSortedByGivenRating(t *testing.T) {
	sn := testSnapshot()

	out := sn.userRatings(2) // bob: movie 1 = 4, movie 2 = 5, movie 3 = 2
	wantIDs := []uint{2, 1, 3}
	if len(out) != len(wantIDs) {
		t.Fatalf("got %d rated movies, want %d", len(out), len(wantIDs))
	}
	for i, r := range out {
		if r.MovieID != wantIDs[i] {
			t.Errorf("position %d = movie %d, want %d", i, r.MovieID, wantIDs[i])
		}
	}
}

func TestUserRatingsUnknownUser(t *testing.T) {
	sn := testSnapshot()

	if out := sn.userRatings(999); len(out) != 0 {
		t.Errorf("unknown user: got %d rated movies, want 0", len(out))
	}
}
