package service

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"

	"employee-records/internal/domain"
	"employee-records/internal/dto"
	"employee-records/internal/repository"
	"employee-records/internal/telemetry"
	"employee-records/internal/token"
)

var (
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("refresh token is missing")
	ErrInvalidToken       = token.ErrInvalidToken
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	BcryptCost int
}

// AuthService defines the authentication operations
type AuthService interface {
	// Signup creates a new user account
	Signup(ctx context.Context, req *dto.SignupRequest) (*domain.User, error)
	// Login authenticates a user and issues a token pair
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.TokenPair, error)
	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	config   *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokens *token.Service, config *AuthServiceConfig) AuthService {
	if config == nil {
		config = &AuthServiceConfig{}
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		config:   config,
	}
}

// Signup creates a new user account. Emails are lowercased before the
// uniqueness check and storage, so "Ana@X.com" and "ana@x.com" are the
// same account.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.signup")
	defer span.End()

	email := strings.ToLower(req.Email)
	span.SetAttributes(attribute.String("email", email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if exists {
		span.SetStatus(codes.Error, "email already exists")
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index catches the race the pre-check cannot
		if errors.Is(err, repository.ErrDuplicateEmail) {
			span.SetStatus(codes.Error, "email already exists")
			return nil, ErrEmailTaken
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", user.ID.Hex()))
	span.SetStatus(codes.Ok, "")
	return user, nil
}

// Login authenticates a user and issues a token pair
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.TokenPair, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.login")
	defer span.End()

	email := strings.ToLower(req.Email)
	span.SetAttributes(attribute.String("email", email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if user == nil {
		span.SetStatus(codes.Error, "invalid credentials")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		span.SetStatus(codes.Error, "invalid credentials")
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID.Hex(), user.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", user.ID.Hex()))
	span.SetStatus(codes.Ok, "")
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	_, span := telemetry.StartSpan(ctx, "service.auth.refresh")
	defer span.End()

	if refreshToken == "" {
		span.SetStatus(codes.Error, "missing token")
		return "", ErrMissingToken
	}

	accessToken, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		span.SetStatus(codes.Error, "invalid token")
		return "", err
	}

	span.SetStatus(codes.Ok, "")
	return accessToken, nil
}
