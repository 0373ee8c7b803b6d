//go:build !integration

package recommender

import "cineMatch/domain"

func ratingPtr(v float64) *float64 { return &v }

// Small catalog shared by most engine tests. Movie 1 is the only one with
// three or more ratings; user 4 and 5 have no rating history.
func testFixture() ([]domain.Movie, []domain.User, []domain.Rating) {
	movies := []domain.Movie{
		{ID: 1, Title: "Dark Waters", Genre: "Drama", Year: 2019, Rating: ratingPtr(4.6)},
		{ID: 2, Title: "Iron Sky", Genre: "Action", Year: 2012, Rating: ratingPtr(4.2)},
		{ID: 3, Title: "Silent Hill", Genre: "Horror", Year: 2006, Rating: ratingPtr(3.8)},
		{ID: 4, Title: "Crimson Tide", Genre: "Action", Year: 1995, Rating: ratingPtr(4.8)},
		{ID: 5, Title: "Long Road", Genre: "Drama", Year: 2021, Rating: ratingPtr(4.9)},
		{ID: 6, Title: "Blue Valley", Genre: "Drama", Year: 2018, Rating: ratingPtr(4.1)},
		{ID: 7, Title: "Night Echo", Genre: "Horror", Year: 2023}, // overall rating still missing
	}

	users := []domain.User{
		{ID: 1, Username: "alice", Name: "Alice", PreferredGenre: "Drama"},
		{ID: 2, Username: "bob", Name: "Bob", PreferredGenre: "Action"},
		{ID: 3, Username: "carol", Name: "Carol", PreferredGenre: "Drama"},
		{ID: 4, Username: "dave", Name: "Dave", PreferredGenre: "Horror"},
		{ID: 5, Username: "eve", Name: "Eve", PreferredGenre: "Drama"},
	}

	ratings := []domain.Rating{
		{ID: 1, UserID: 1, MovieID: 1, Rating: 5},
		{ID: 2, UserID: 1, MovieID: 2, Rating: 3},
		{ID: 3, UserID: 2, MovieID: 1, Rating: 4},
		{ID: 4, UserID: 2, MovieID: 2, Rating: 5},
		{ID: 5, UserID: 2, MovieID: 3, Rating: 2},
		{ID: 6, UserID: 3, MovieID: 1, Rating: 5},
		{ID: 7, UserID: 3, MovieID: 3, Rating: 4},
		{ID: 8, UserID: 3, MovieID: 5, Rating: 5},
	}

	return movies, users, ratings
}

func testSnapshot() *Snapshot {
	return buildSnapshot(testFixture())
}
