//go:build !integration

package rating

import (
	"context"
	"errors"
	"testing"

	"cineMatch/domain"
)

type fakeRatingRepo struct {
	ratings map[[2]uint]domain.Rating
	upserts int
	deletes int
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[[2]uint]domain.Rating)}
}

func (f *fakeRatingRepo) Upsert(ctx context.Context, rating *domain.Rating) error {
	f.upserts++
	f.ratings[[2]uint{rating.UserID, rating.MovieID}] = *rating
	return nil
}

func (f *fakeRatingRepo) FindByUserAndMovie(ctx context.Context, userID, movieID uint) (domain.Rating, error) {
	r, ok := f.ratings[[2]uint{userID, movieID}]
	if !ok {
		return domain.Rating{}, errors.New("rating not found")
	}
	return r, nil
}

func (f *fakeRatingRepo) Delete(ctx context.Context, userID, movieID uint) error {
	f.deletes++
	delete(f.ratings, [2]uint{userID, movieID})
	return nil
}

type fakeMovieRepo struct {
	known map[uint]bool
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uint) (domain.Movie, error) {
	if !f.known[id] {
		return domain.Movie{}, errors.New("movie not found")
	}
	m := domain.Movie{Title: "whatever"}
	m.ID = id
	return m, nil
}

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls++
	return f.err
}

func newService(movieIDs ...uint) (*ratingService, *fakeRatingRepo, *fakeRefresher) {
	known := make(map[uint]bool)
	for _, id := range movieIDs {
		known[id] = true
	}
	repo := newFakeRatingRepo()
	ref := &fakeRefresher{}
	svc := NewRatingService(repo, &fakeMovieRepo{known: known}, ref)
	return svc, repo, ref
}

func TestAddRatingTriggersRefresh(t *testing.T) {
	svc, repo, ref := newService(7)

	if err := svc.AddRating(context.Background(), 1, 7, 4.5, "solid"); err != nil {
		t.Fatalf("AddRating: %v", err)
	}

	if repo.upserts != 1 {
		t.Errorf("upserts = %d, want 1", repo.upserts)
	}
	if ref.calls != 1 {
		t.Errorf("refresh calls = %d, want 1", ref.calls)
	}

	got := repo.ratings[[2]uint{1, 7}]
	if got.Rating != 4.5 || got.Review != "solid" {
		t.Errorf("stored rating = %+v", got)
	}
}

func TestAddRatingRejectsOutOfRange(t *testing.T) {
	svc, repo, ref := newService(7)

	for _, v := range []float64{0, 0.9, 5.1, -2} {
		if err := svc.AddRating(context.Background(), 1, 7, v, ""); err == nil {
			t.Errorf("AddRating(%v) accepted out-of-range value", v)
		}
	}

	if repo.upserts != 0 {
		t.Errorf("upserts = %d, want 0", repo.upserts)
	}
	if ref.calls != 0 {
		t.Errorf("refresh calls = %d, want 0", ref.calls)
	}
}

func TestAddRatingUnknownMovie(t *testing.T) {
	svc, _, ref := newService(7)

	err := svc.AddRating(context.Background(), 1, 999, 3, "")
	if err == nil {
		t.Fatal("expected error for unknown movie")
	}
	if ref.calls != 0 {
		t.Errorf("refresh calls = %d, want 0", ref.calls)
	}
}

func TestUpdateRatingRequiresExisting(t *testing.T) {
	svc, _, _ := newService(7)

	if err := svc.UpdateRating(context.Background(), 1, 7, 3, ""); err == nil {
		t.Fatal("expected error updating a rating that does not exist")
	}
}

func TestUpdateRatingOverwritesValueAndReview(t *testing.T) {
	svc, repo, ref := newService(7)

	if err := svc.AddRating(context.Background(), 1, 7, 2, "meh"); err != nil {
		t.Fatalf("AddRating: %v", err)
	}
	if err := svc.UpdateRating(context.Background(), 1, 7, 5, "rewatched, great"); err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}

	got := repo.ratings[[2]uint{1, 7}]
	if got.Rating != 5 || got.Review != "rewatched, great" {
		t.Errorf("stored rating = %+v", got)
	}
	if ref.calls != 2 {
		t.Errorf("refresh calls = %d, want 2", ref.calls)
	}
}

func TestDeleteRatingTriggersRefresh(t *testing.T) {
	svc, repo, ref := newService(7)

	if err := svc.AddRating(context.Background(), 1, 7, 4, ""); err != nil {
		t.Fatalf("AddRating: %v", err)
	}
	if err := svc.DeleteRating(context.Background(), 1, 7); err != nil {
		t.Fatalf("DeleteRating: %v", err)
	}

	if repo.deletes != 1 {
		t.Errorf("deletes = %d, want 1", repo.deletes)
	}
	if ref.calls != 2 {
		t.Errorf("refresh calls = %d, want 2", ref.calls)
	}
	if _, err := repo.FindByUserAndMovie(context.Background(), 1, 7); err == nil {
		t.Error("rating still present after delete")
	}
}

func TestDeleteRatingMissing(t *testing.T) {
	svc, _, _ := newService(7)

	if err := svc.DeleteRating(context.Background(), 1, 7); err == nil {
		t.Fatal("expected error deleting a rating that does not exist")
	}
}

func TestRefreshFailureSurfaces(t *testing.T) {
	svc, _, ref := newService(7)
	ref.err = errors.New("snapshot rebuild failed")

	if err := svc.AddRating(context.Background(), 1, 7, 4, ""); err == nil {
		t.Fatal("expected refresh failure to surface")
	}
}

func TestMutationWithCancelledContext(t *testing.T) {
	svc, repo, _ := newService(7)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.AddRating(ctx, 1, 7, 4, ""); err == nil {
		t.Fatal("expected error with cancelled context")
	}
	if repo.upserts != 0 {
		t.Errorf("upserts = %d, want 0", repo.upserts)
	}
}
