// Package users implements account storage, registration and login for the
// lost-and-found registry.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusreg/lostfound/internal/common"
	"github.com/campusreg/lostfound/internal/server/auth"
	"github.com/campusreg/lostfound/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the registry has always hashed with.
const bcryptCost = 10

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register creates an account with admin=false and returns a signed session
// token plus the public projection. Empty fields yield common.ErrValidation;
// a college id or email already in use yields common.ErrDuplicateUser.
func (s *Service) Register(ctx context.Context, collegeID, email, password string) (string, Public, error) {

	if collegeID == "" || email == "" || password == "" {
		return "", Public{}, common.ErrValidation
	}

	exists, err := s.repo.Exists(ctx, collegeID, email)
	if err != nil {
		return "", Public{}, fmt.Errorf("checking existing user: %w", err)
	}
	if exists {
		return "", Public{}, common.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", Public{}, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		CollegeID:    collegeID,
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			return "", Public{}, common.ErrDuplicateUser
		}
		return "", Public{}, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", Public{}, err
	}

	return token, user.AsPublic(), nil
}

// Login authenticates by college id and password. Both an unknown college id
// and a wrong password yield the same common.ErrInvalidCredentials, so the
// API cannot be used to enumerate accounts.
func (s *Service) Login(ctx context.Context, collegeID, password string) (string, Public, error) {

	if collegeID == "" || password == "" {
		return "", Public{}, common.ErrValidation
	}

	user, err := s.repo.GetByCollegeID(ctx, collegeID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", Public{}, common.ErrInvalidCredentials
		}
		return "", Public{}, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", Public{}, common.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", Public{}, err
	}

	return token, user.AsPublic(), nil
}

// ListAll returns every user without password hashes, for the admin view.
func (s *Service) ListAll(ctx context.Context) ([]Public, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) issueToken(user *User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.CollegeID, user.Email, user.IsAdmin, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}
