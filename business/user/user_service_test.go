//go:build !integration

package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"cineMatch/domain"
	"cineMatch/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type fakeUserRepo struct {
	byID       map[uint]domain.User
	byUsername map[string]domain.User
	nextID     uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       make(map[uint]domain.User),
		byUsername: make(map[string]domain.User),
		nextID:     1,
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byID[user.ID] = *user
	f.byUsername[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return errors.New("user not found")
	}
	f.byID[user.ID] = *user
	f.byUsername[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return errors.New("user not found")
	}
	u.Password = passwordHash
	f.byID[id] = u
	f.byUsername[u.Username] = u
	return nil
}

type fakeSessionRepo struct {
	stored  map[string]string
	deletes int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{stored: make(map[string]string)}
}

func (f *fakeSessionRepo) StoreSession(ctx context.Context, userID, role, token string, ttl time.Duration) error {
	f.stored[userID] = token
	return nil
}

func (f *fakeSessionRepo) DeleteSession(ctx context.Context, userID string) error {
	f.deletes++
	delete(f.stored, userID)
	return nil
}

func newTestService() (*userService, *fakeUserRepo, *fakeSessionRepo) {
	utils.InitJWT("test-secret")
	repo := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	return NewUserService(repo, sessions, validator.New()), repo, sessions
}

func register(t *testing.T, svc *userService, username, password string) domain.User {
	t.Helper()
	u, err := svc.Register(context.Background(), &domain.User{
		Username: username,
		Password: password,
		Name:     "Test User",
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("Register(%q): %v", username, err)
	}
	return u
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	svc, repo, _ := newTestService()

	got := register(t, svc, "alice", "secret123")

	if got.Password != "" {
		t.Error("Register returned the password hash")
	}
	if got.Role != RoleUser {
		t.Errorf("role = %q, want %q", got.Role, RoleUser)
	}

	stored := repo.byUsername["alice"]
	if stored.Password == "" || stored.Password == "secret123" {
		t.Error("stored password is not hashed")
	}
}

func TestRegisterRejectsShortCredentials(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Register(context.Background(), &domain.User{Username: "ab", Password: "secret123"}); err == nil {
		t.Error("accepted a 2-character username")
	}
	if _, err := svc.Register(context.Background(), &domain.User{Username: "alice", Password: "pw"}); err == nil {
		t.Error("accepted a 2-character password")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService()

	register(t, svc, "alice", "secret123")

	if _, err := svc.Register(context.Background(), &domain.User{Username: "alice", Password: "another1"}); err == nil {
		t.Fatal("accepted duplicate username")
	}
}

func TestLoginReturnsTokenAndStoresSession(t *testing.T) {
	svc, _, sessions := newTestService()
	registered := register(t, svc, "alice", "secret123")

	token, user, err := svc.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}
	if user.ID != registered.ID {
		t.Errorf("user ID = %d, want %d", user.ID, registered.ID)
	}
	if user.Password != "" {
		t.Error("Login returned the password hash")
	}

	claims, err := utils.ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.Role != RoleUser {
		t.Errorf("claims role = %q, want %q", claims.Role, RoleUser)
	}

	if len(sessions.stored) != 1 {
		t.Errorf("stored sessions = %d, want 1", len(sessions.stored))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "alice", "secret123")

	if _, _, err := svc.Login(context.Background(), "alice", "wrong-password"); err == nil {
		t.Fatal("accepted wrong password")
	}
	if _, _, err := svc.Login(context.Background(), "nobody", "secret123"); err == nil {
		t.Fatal("accepted unknown username")
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	svc, _, sessions := newTestService()
	registered := register(t, svc, "alice", "secret123")

	if _, _, err := svc.Login(context.Background(), "alice", "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(context.Background(), registered.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sessions.deletes != 1 || len(sessions.stored) != 0 {
		t.Errorf("session not removed, deletes=%d stored=%d", sessions.deletes, len(sessions.stored))
	}
}

func TestGetAllUsersStripsPasswords(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "alice", "secret123")
	register(t, svc, "bob", "secret456")

	users, err := svc.GetAllUsers(context.Background())
	if err != nil {
		t.Fatalf("GetAllUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len(users) = %d, want 2", len(users))
	}
	for _, u := range users {
		if u.Password != "" {
			t.Errorf("user %q still carries password hash", u.Username)
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, repo, _ := newTestService()
	registered := register(t, svc, "alice", "secret123")

	update := domain.User{
		Name:           "Alice Renamed",
		Email:          "alice@new.example.com",
		Age:            31,
		PreferredGenre: "Drama",
	}
	update.ID = registered.ID

	got, err := svc.UpdateProfile(context.Background(), &update)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Name != "Alice Renamed" || got.PreferredGenre != "Drama" || got.Age != 31 {
		t.Errorf("updated user = %+v", got)
	}

	// credentials must survive a profile edit
	stored := repo.byID[registered.ID]
	if stored.Username != "alice" || stored.Password == "" {
		t.Errorf("profile update touched credentials: %+v", stored)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService()
	registered := register(t, svc, "alice", "secret123")

	if err := svc.ChangePassword(context.Background(), registered.ID, "wrong", "newsecret1"); err == nil {
		t.Fatal("accepted wrong current password")
	}
	if err := svc.ChangePassword(context.Background(), registered.ID, "secret123", "short"); err == nil {
		t.Fatal("accepted new password under 6 characters")
	}

	if err := svc.ChangePassword(context.Background(), registered.ID, "secret123", "newsecret1"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "secret123"); err == nil {
		t.Error("old password still accepted")
	}
	if _, _, err := svc.Login(context.Background(), "alice", "newsecret1"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}
