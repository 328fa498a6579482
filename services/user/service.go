package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenLifetime = 24 * time.Hour

// AuthService is the thin identity layer behind the checkout gate: local
// email/password accounts issuing JWTs. The booking core only ever consumes
// the resulting presence signal.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, name, phone string) (*models.User, error)
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func (s *DefaultAuthService) Register(ctx context.Context, email, name, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.Logger.Info("user registered", zap.String("userID", u.ID))
	return &u, token, nil
}

func (s *DefaultAuthService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !u.Active {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return u, token, nil
}

func (s *DefaultAuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateProfile changes the user's display name and phone. Empty fields are
// left as they are; email and role never change through this path.
func (s *DefaultAuthService) UpdateProfile(ctx context.Context, id, name, phone string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		u.Name = name
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		u.Phone = phone
	}
	if err := s.Repo.Update(ctx, *u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	s.Logger.Info("profile updated", zap.String("userID", u.ID))
	return u, nil
}
