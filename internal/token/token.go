package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"employee-records/internal/domain"
)

var (
	// ErrInvalidToken covers bad signatures, expiry, and malformed tokens.
	// Callers map it to an authentication-rejection response.
	ErrInvalidToken = errors.New("invalid token")
)

// Config holds token signing settings
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Service issues and verifies signed access/refresh tokens. Access and
// refresh tokens are signed with distinct secrets so one cannot stand in
// for the other.
type Service struct {
	config *Config
}

// NewService creates a token Service
func NewService(cfg *Config) *Service {
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = time.Hour
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &Service{config: cfg}
}

// IssuePair issues an access token (AccessTTL) and a refresh token
// (RefreshTTL), both carrying the user's id and email as claims.
func (s *Service) IssuePair(userID, email string) (*domain.TokenPair, error) {
	accessToken, err := s.sign(userID, email, s.config.AccessSecret, s.config.AccessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.sign(userID, email, s.config.RefreshSecret, s.config.RefreshTTL)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccess verifies a token against the access secret
func (s *Service) VerifyAccess(tokenString string) (*domain.Claims, error) {
	return s.verify(tokenString, s.config.AccessSecret)
}

// VerifyRefresh verifies a token against the refresh secret
func (s *Service) VerifyRefresh(tokenString string) (*domain.Claims, error) {
	return s.verify(tokenString, s.config.RefreshSecret)
}

// Refresh verifies a refresh token and mints a new access token for the
// same subject, signed with the access secret and the access TTL.
func (s *Service) Refresh(refreshToken string) (string, error) {
	claims, err := s.verify(refreshToken, s.config.RefreshSecret)
	if err != nil {
		return "", err
	}
	return s.sign(claims.UserID, claims.Email, s.config.AccessSecret, s.config.AccessTTL)
}

func (s *Service) sign(userID, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func (s *Service) verify(tokenString, secret string) (*domain.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &domain.Claims{
		UserID: userID,
		Email:  email,
	}, nil
}
