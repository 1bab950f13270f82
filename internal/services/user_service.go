package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"nortetech-site/internal/auth"
	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo       storage.UserRepository
	tokens     TokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens TokenStore, jwtSecret string, accessTTL, refreshTTL time.Duration) UserService {
	return &userService{
		repo:       repo,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a candidate account. HR accounts are created by operators.
func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	user, err := s.repo.Create(ctx, req, models.RoleCandidate)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh trades a refresh token for a new pair. The old token stops working.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error) {
	userID, err := s.tokens.Consume(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("Refresh: Error reading refresh token: %v", err)
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, mapRepoError(err, "fetching user for refresh")
	}
	return s.issueTokens(ctx, user)
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.tokens.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("Logout: Error revoking refresh token: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", id))
	}
	return user, nil
}

func (s *userService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenPair, error) {
	accessToken, err := auth.IssueAccessToken(user, s.jwtSecret, s.accessTTL, time.Now())
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := s.tokens.Save(ctx, refreshToken, user.ID, s.refreshTTL); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
