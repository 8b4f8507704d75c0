package token

import (
	"testing"
	"time"
)

func newTestService() *Service {
	return NewService(&Config{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	})
}

func TestService_IssuePair(t *testing.T) {
	svc := newTestService()

	pair, err := svc.IssuePair("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}
	if pair.AccessToken == "" {
		t.Error("IssuePair() AccessToken is empty")
	}
	if pair.RefreshToken == "" {
		t.Error("IssuePair() RefreshToken is empty")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("IssuePair() access and refresh tokens are identical")
	}

	t.Run("access token claims round-trip", func(t *testing.T) {
		claims, err := svc.VerifyAccess(pair.AccessToken)
		if err != nil {
			t.Fatalf("VerifyAccess() error = %v", err)
		}
		if claims.UserID != "user-123" {
			t.Errorf("VerifyAccess() UserID = %v, want user-123", claims.UserID)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("VerifyAccess() Email = %v, want user@example.com", claims.Email)
		}
	})

	t.Run("refresh token claims round-trip", func(t *testing.T) {
		claims, err := svc.VerifyRefresh(pair.RefreshToken)
		if err != nil {
			t.Fatalf("VerifyRefresh() error = %v", err)
		}
		if claims.UserID != "user-123" {
			t.Errorf("VerifyRefresh() UserID = %v, want user-123", claims.UserID)
		}
	})
}

func TestService_VerifyRejectsCrossSecret(t *testing.T) {
	svc := newTestService()

	pair, err := svc.IssuePair("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}

	// A refresh token must never pass as an access token, and vice versa
	if _, err := svc.VerifyAccess(pair.RefreshToken); err != ErrInvalidToken {
		t.Errorf("VerifyAccess(refresh token) error = %v, want %v", err, ErrInvalidToken)
	}
	if _, err := svc.VerifyRefresh(pair.AccessToken); err != ErrInvalidToken {
		t.Errorf("VerifyRefresh(access token) error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestService_VerifyRejectsWrongSigner(t *testing.T) {
	svc := newTestService()
	other := NewService(&Config{
		AccessSecret:  "other-access-secret",
		RefreshSecret: "other-refresh-secret",
	})

	pair, err := other.IssuePair("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}

	if _, err := svc.VerifyAccess(pair.AccessToken); err != ErrInvalidToken {
		t.Errorf("VerifyAccess() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestService_VerifyRejectsGarbage(t *testing.T) {
	svc := newTestService()

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyAccess(tokenString); err != ErrInvalidToken {
			t.Errorf("VerifyAccess(%q) error = %v, want %v", tokenString, err, ErrInvalidToken)
		}
	}
}

func TestService_VerifyRejectsExpired(t *testing.T) {
	svc := NewService(&Config{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     -time.Minute,
		RefreshTTL:    -time.Minute,
	})

	pair, err := svc.IssuePair("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}

	if _, err := svc.VerifyAccess(pair.AccessToken); err != ErrInvalidToken {
		t.Errorf("VerifyAccess(expired) error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestService_Refresh(t *testing.T) {
	svc := newTestService()

	pair, err := svc.IssuePair("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("IssuePair() error = %v", err)
	}

	t.Run("mints an access token", func(t *testing.T) {
		accessToken, err := svc.Refresh(pair.RefreshToken)
		if err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}

		claims, err := svc.VerifyAccess(accessToken)
		if err != nil {
			t.Fatalf("VerifyAccess() on minted token error = %v", err)
		}
		if claims.UserID != "user-123" {
			t.Errorf("minted token UserID = %v, want user-123", claims.UserID)
		}

		// Minted with the access secret, so it is not a refresh token
		if _, err := svc.VerifyRefresh(accessToken); err != ErrInvalidToken {
			t.Errorf("VerifyRefresh(minted token) error = %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("rejects access token", func(t *testing.T) {
		if _, err := svc.Refresh(pair.AccessToken); err != ErrInvalidToken {
			t.Errorf("Refresh(access token) error = %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := svc.Refresh("not-a-token"); err != ErrInvalidToken {
			t.Errorf("Refresh() error = %v, want %v", err, ErrInvalidToken)
		}
	})
}

func TestNewService_TTLDefaults(t *testing.T) {
	svc := NewService(&Config{
		AccessSecret:  "a",
		RefreshSecret: "b",
	})
	if svc.config.AccessTTL != time.Hour {
		t.Errorf("AccessTTL = %v, want %v", svc.config.AccessTTL, time.Hour)
	}
	if svc.config.RefreshTTL != 7*24*time.Hour {
		t.Errorf("RefreshTTL = %v, want %v", svc.config.RefreshTTL, 7*24*time.Hour)
	}
}
