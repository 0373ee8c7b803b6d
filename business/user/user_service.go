package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cineMatch/domain"
	"cineMatch/pkg/logger"
	"cineMatch/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// SessionRepository stores the active session token per user.
type SessionRepository interface {
	StoreSession(ctx context.Context, userID, role, token string, ttl time.Duration) error
	DeleteSession(ctx context.Context, userID string) error
}

type userService struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	validate    *validator.Validate
}

const sessionTTL = 24 * time.Hour

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func NewUserService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	validate *validator.Validate,
) *userService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		validate:    validate,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Username, "required,min=3,max=50"); err != nil {
		logger.Error("Invalid username", err)
		return domain.User{}, errors.New("username must be 3-50 characters")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Check if username already exists
	existingUser, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Username already exists")
		return domain.User{}, errors.New("username already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Username:       user.Username,
		Password:       passwordHash,
		Name:           user.Name,
		Email:          user.Email,
		Age:            user.Age,
		PreferredGenre: user.PreferredGenre,
		Role:           RoleUser,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("invalid username or password")
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("invalid username or password")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.sessionRepo != nil {
		if err := s.sessionRepo.StoreSession(ctx, userIDStr, user.Role, token, sessionTTL); err != nil {
			logger.Warn("Failed to store session", err)
		}
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint) error {
	if s.sessionRepo == nil {
		return nil
	}
	userIDStr := strconv.FormatUint(uint64(userID), 10)
	if err := s.sessionRepo.DeleteSession(ctx, userIDStr); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all users", err)
		return nil, err
	}

	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *userService) UpdateProfile(ctx context.Context, user *domain.User) (domain.User, error) {
	if user.ID == 0 {
		return domain.User{}, errors.New("user ID is required")
	}

	existing, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		logger.Error("user not found", err)
		return domain.User{}, errors.New("user not found")
	}

	existing.Name = user.Name
	existing.Email = user.Email
	existing.Age = user.Age
	existing.PreferredGenre = user.PreferredGenre

	if err := s.userRepo.Update(ctx, &existing); err != nil {
		logger.Error("failed to update user", err)
		return domain.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	existing.Password = ""
	return existing, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if err := s.validate.Var(newPassword, "required,min=6"); err != nil {
		return errors.New("password must be at least 6 characters")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Error("user not found", err)
		return errors.New("user not found")
	}

	if ok := utils.CheckPassword(currentPassword, user.Password); !ok {
		return errors.New("current password is incorrect")
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return errors.New("failed to hash password")
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		logger.Error("failed to update password", err)
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
