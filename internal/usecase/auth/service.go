package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/meetbrief-team/meetbrief/errors"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/domain/repositories"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/oauth"
	"github.com/meetbrief-team/meetbrief/pkg/jwt"
)

// Service handles Google sign-in and session validation. Identity lives at
// Google; the local users table only mirrors profile fields for display and
// ownership checks.
type Service struct {
	userRepo     repositories.UserRepository
	google       *oauth.GoogleProvider
	stateManager *oauth.StateManager
	jwtManager   *jwt.Manager
	logger       *zap.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo repositories.UserRepository,
	google *oauth.GoogleProvider,
	stateManager *oauth.StateManager,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		google:       google,
		stateManager: stateManager,
		jwtManager:   jwtManager,
		logger:       logger,
	}
}

// LoginURLResponse carries the consent-screen redirect target
type LoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// AuthResponse is returned after a successful callback exchange
type AuthResponse struct {
	User        *entities.User `json:"user"`
	AccessToken string         `json:"access_token"`
	ExpiresIn   int64          `json:"expires_in"`
}

// LoginURL generates a consent-screen URL with a stored CSRF state token
func (s *Service) LoginURL(ctx context.Context) (*LoginURLResponse, error) {
	state, err := s.stateManager.GenerateState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	return &LoginURLResponse{
		URL:   s.google.GetAuthURL(state),
		State: state,
	}, nil
}

// HandleCallback validates the state token, exchanges the authorization code,
// mirrors the Google profile into the users table and issues a session JWT
func (s *Service) HandleCallback(ctx context.Context, code, state string) (*AuthResponse, error) {
	if !s.stateManager.ValidateState(ctx, state) {
		return nil, apperrors.ErrInvalidOAuthState()
	}

	token, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperrors.ErrOAuthFailed("google", err)
	}

	googleUser, err := s.google.GetUserInfo(ctx, token)
	if err != nil {
		return nil, apperrors.ErrOAuthFailed("google", err)
	}

	user, err := s.userRepo.UpsertByGoogleID(ctx, &entities.User{
		GoogleID:  googleUser.ID,
		Email:     googleUser.Email,
		Name:      googleUser.Name,
		AvatarURL: googleUser.Picture,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Info("user signed in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtManager.AccessExpiry().Seconds()),
	}, nil
}

// ValidateSession validates a session JWT and loads the mirrored user record
func (s *Service) ValidateSession(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated()
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return nil, apperrors.ErrUnauthenticated()
	}

	return user, nil
}
