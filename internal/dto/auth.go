package dto

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the SignupRequest
func (r *SignupRequest) Validate() (bool, string) {
	if r.Email == "" || r.Username == "" || r.Password == "" {
		return false, "Email, username, and password are required"
	}
	return true, ""
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() (bool, string) {
	if r.Email == "" || r.Password == "" {
		return false, "Email and password are required"
	}
	return true, ""
}

// RefreshTokenRequest represents the refresh-token request body
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserResponse is the public view of a user. The password hash never
// leaves the service.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// RefreshTokenResponse carries the freshly minted access token
type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
