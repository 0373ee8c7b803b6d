//go:build !integration

package movie

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cineMatch/domain"
)

type fakeMovieRepo struct {
	movies map[uint]domain.Movie
	nextID uint
}

func newFakeMovieRepo(movies ...domain.Movie) *fakeMovieRepo {
	repo := &fakeMovieRepo{movies: make(map[uint]domain.Movie), nextID: 1}
	for _, m := range movies {
		if m.ID >= repo.nextID {
			repo.nextID = m.ID + 1
		}
		repo.movies[m.ID] = m
	}
	return repo
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	movie.ID = f.nextID
	f.nextID++
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uint) (domain.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return domain.Movie{}, errors.New("movie not found")
	}
	return m, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]domain.Movie, error) {
	out := make([]domain.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovieRepo) FindByGenre(ctx context.Context, genre string) ([]domain.Movie, error) {
	var out []domain.Movie
	for _, m := range f.movies {
		if m.Genre == genre {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	var out []domain.Movie
	for _, m := range f.movies {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(query)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	if _, ok := f.movies[movie.ID]; !ok {
		return errors.New("movie not found")
	}
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.movies[id]; !ok {
		return errors.New("movie not found")
	}
	delete(f.movies, id)
	return nil
}

type fakeGenreRepo struct {
	genres []domain.Genre
}

func (f *fakeGenreRepo) FindAll(ctx context.Context) ([]domain.Genre, error) {
	return f.genres, nil
}

func catalogMovie(id uint, title, genre string) domain.Movie {
	m := domain.Movie{Title: title, Genre: genre, Year: 2020}
	m.ID = id
	return m
}

func TestGetMoviesFilters(t *testing.T) {
	repo := newFakeMovieRepo(
		catalogMovie(1, "The Quiet Year", "Drama"),
		catalogMovie(2, "Steel Run", "Action"),
		catalogMovie(3, "Quiet Streets", "Drama"),
	)
	svc := NewMovieService(repo, &fakeGenreRepo{})

	all, err := svc.GetMovies(context.Background(), "", "")
	if err != nil {
		t.Fatalf("GetMovies: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}

	drama, err := svc.GetMovies(context.Background(), "Drama", "")
	if err != nil {
		t.Fatalf("GetMovies(genre): %v", err)
	}
	if len(drama) != 2 {
		t.Errorf("len(drama) = %d, want 2", len(drama))
	}

	// search wins over genre when both are set
	found, err := svc.GetMovies(context.Background(), "Action", "quiet")
	if err != nil {
		t.Fatalf("GetMovies(search): %v", err)
	}
	if len(found) != 2 {
		t.Errorf("len(found) = %d, want 2", len(found))
	}
}

func TestGetMovieByID(t *testing.T) {
	repo := newFakeMovieRepo(catalogMovie(1, "The Quiet Year", "Drama"))
	svc := NewMovieService(repo, &fakeGenreRepo{})

	m, err := svc.GetMovieByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetMovieByID: %v", err)
	}
	if m.Title != "The Quiet Year" {
		t.Errorf("title = %q", m.Title)
	}

	if _, err := svc.GetMovieByID(context.Background(), 0); err == nil {
		t.Error("accepted id 0")
	}
	if _, err := svc.GetMovieByID(context.Background(), 99); err == nil {
		t.Error("expected error for unknown movie")
	}
}

func TestCreateMovieValidation(t *testing.T) {
	repo := newFakeMovieRepo()
	svc := NewMovieService(repo, &fakeGenreRepo{})

	if _, err := svc.CreateMovie(context.Background(), &domain.Movie{Genre: "Drama"}); err == nil {
		t.Error("accepted movie without title")
	}
	if _, err := svc.CreateMovie(context.Background(), &domain.Movie{Title: "Untitled"}); err == nil {
		t.Error("accepted movie without genre")
	}

	created, err := svc.CreateMovie(context.Background(), &domain.Movie{Title: "New One", Genre: "Drama", Year: 2024})
	if err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}
	if created.ID == 0 {
		t.Error("created movie has no ID")
	}
}

func TestUpdateMovieReturnsFreshCopy(t *testing.T) {
	repo := newFakeMovieRepo(catalogMovie(1, "The Quiet Year", "Drama"))
	svc := NewMovieService(repo, &fakeGenreRepo{})

	update := catalogMovie(1, "The Quiet Year (Director's Cut)", "Drama")
	got, err := svc.UpdateMovie(context.Background(), &update)
	if err != nil {
		t.Fatalf("UpdateMovie: %v", err)
	}
	if got.Title != "The Quiet Year (Director's Cut)" {
		t.Errorf("title = %q", got.Title)
	}

	missing := catalogMovie(42, "Ghost", "Horror")
	if _, err := svc.UpdateMovie(context.Background(), &missing); err == nil {
		t.Error("expected error updating unknown movie")
	}
}

func TestDeleteMovie(t *testing.T) {
	repo := newFakeMovieRepo(catalogMovie(1, "The Quiet Year", "Drama"))
	svc := NewMovieService(repo, &fakeGenreRepo{})

	if err := svc.DeleteMovie(context.Background(), 1); err != nil {
		t.Fatalf("DeleteMovie: %v", err)
	}
	if err := svc.DeleteMovie(context.Background(), 1); err == nil {
		t.Error("expected error deleting twice")
	}
}
