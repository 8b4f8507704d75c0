package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"employee-records/internal/repository"
	"employee-records/internal/service"
	"employee-records/internal/token"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tokens := token.NewService(&token.Config{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	})
	svc := service.NewAuthService(repository.NewMemoryUserRepository(), tokens, &service.AuthServiceConfig{
		BcryptCost: bcrypt.MinCost,
	})
	handler := NewAuthHandler(svc)

	router := gin.New()
	user := router.Group("/api/v1/user")
	{
		user.POST("/signup", handler.Signup)
		user.POST("/login", handler.Login)
		user.POST("/refresh-token", handler.RefreshToken)
	}
	return router
}

func TestAuthHandler_Signup(t *testing.T) {
	router := setupAuthRouter()

	t.Run("successful signup", func(t *testing.T) {
		resp := doJSON(router, http.MethodPost, "/api/v1/user/signup", map[string]interface{}{
			"email":    "ana@example.com",
			"username": "ana",
			"password": "Password1!",
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, resp.Code, resp.Body.String())
		}

		env := decodeEnvelope(t, resp)
		var data struct {
			ID        string `json:"id"`
			Username  string `json:"username"`
			Email     string `json:"email"`
			CreatedAt string `json:"createdAt"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("invalid signup data: %v", err)
		}
		if data.ID == "" {
			t.Error("signup response has no id")
		}
		if data.Email != "ana@example.com" {
			t.Errorf("email = %q, want ana@example.com", data.Email)
		}

		// No credentials or hashes in the signup response
		body := resp.Body.String()
		for _, needle := range []string{"password", "Hash", "accessToken", "refreshToken"} {
			if strings.Contains(body, needle) {
				t.Errorf("signup response leaks %q: %s", needle, body)
			}
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp := doJSON(router, http.MethodPost, "/api/v1/user/signup", map[string]interface{}{
			"email":    "Ana@Example.com", // same account, different case
			"username": "ana2",
			"password": "Password2!",
		})
		if resp.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
		}
		env := decodeEnvelope(t, resp)
		if env.Error == nil || env.Error.Code != "CONFLICT" {
			t.Errorf("expected CONFLICT, got %+v", env.Error)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := doJSON(router, http.MethodPost, "/api/v1/user/signup", map[string]interface{}{
			"email": "incomplete@example.com",
		})
		if resp.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	router := setupAuthRouter()

	signup := doJSON(router, http.MethodPost, "/api/v1/user/signup", map[string]interface{}{
		"email":    "bee@example.com",
		"username": "bee",
		"password": "Password1!",
	})
	if signup.Code != http.StatusCreated {
		t.Fatalf("setup signup failed: %d", signup.Code)
	}

	t.Run("successful login", func(t *testing.T) {
		resp := doJSON(router, http.MethodPost, "/api/v1/user/login", map[string]interface{}{
			"email":    "bee@example.com",
			"password": "Password1!",
		})
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
		}

		env := decodeEnvelope(t, resp)
		var data struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("invalid login data: %v", err)
		}
		if data.AccessToken == "" || data.RefreshToken == "" {
			t.Error("login response is missing tokens")
		}
	})

	t.Run("uniform rejection for wrong password and unknown email", func(t *testing.T) {
		wrongPassword := doJSON(router, http.MethodPost, "/api/v1/user/login", map[string]interface{}{
			"email":    "bee@example.com",
			"password": "WrongPassword!",
		})
		unknownEmail := doJSON(router, http.MethodPost, "/api/v1/user/login", map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "Password1!",
		})

		for _, resp := range []*struct {
			name string
			body string
			code int
		}{
			{"wrong password", wrongPassword.Body.String(), wrongPassword.Code},
			{"unknown email", unknownEmail.Body.String(), unknownEmail.Code},
		} {
			if resp.code != http.StatusUnauthorized {
				t.Errorf("%s: expected status %d, got %d", resp.name, http.StatusUnauthorized, resp.code)
			}
		}

		// The two failure bodies are indistinguishable
		if wrongPassword.Body.String() != unknownEmail.Body.String() {
			t.Errorf("login failures differ: %q vs %q", wrongPassword.Body.String(), unknownEmail.Body.String())
		}
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	router := setupAuthRouter()

	doJSON(router, http.MethodPost, "/api/v1/user/signup", map[string]interface{}{
		"email":    "cal@example.com",
		"username": "cal",
		"password": "Password1!",
	})
	login := doJSON(router, http.MethodPost, "/api/v1/user/login", map[string]interface{}{
		"email":    "cal@example.com",
		"password": "Password1!",
	})
	env := decodeEnvelope(t, login)
	var pair struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(env.Data, &pair); err != nil {
		t.Fatalf("invalid login data: %v", err)
	}

	t.Run("successful refresh", func(t *testing.T) {
		resp := doJSON(router, http.MethodPost, "/api/v1/user/refresh-token", map[string]interface{}{
			"refreshToken": pair.RefreshToken,
		})
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
		}

		env := decodeEnvelope(t, resp)
		var data struct {
			AccessToken string `json:"accessToken"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("invalid refresh data: %v", err)
		}
		if data.AccessToken == "" {
			t.Error("refresh response has no access token")
		}
	})

	t.Run("missing token", func(t *testing.T) {
		resp := doJSON(router, http.MethodPost, "/api/v1/user/refresh-token", map[string]interface{}{})
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, resp.Code)
		}
		env := decodeEnvelope(t, resp)
		if env.Error == nil || env.Error.Code != "MISSING_TOKEN" {
			t.Errorf("expected MISSING_TOKEN, got %+v", env.Error)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		resp := doJSON(router, http.MethodPost, "/api/v1/user/refresh-token", map[string]interface{}{
			"refreshToken": "not-a-token",
		})
		if resp.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, resp.Code)
		}
		env := decodeEnvelope(t, resp)
		if env.Error == nil || env.Error.Code != "INVALID_TOKEN" {
			t.Errorf("expected INVALID_TOKEN, got %+v", env.Error)
		}
	})

	t.Run("access token rejected", func(t *testing.T) {
		resp := doJSON(router, http.MethodPost, "/api/v1/user/refresh-token", map[string]interface{}{
			"refreshToken": pair.AccessToken,
		})
		if resp.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, resp.Code)
		}
	})
}
