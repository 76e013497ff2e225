package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lakeside/hotel-client/internal/domain"
)

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is a sign-up request.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResult is what login and registration hand back: the bearer token plus
// the identity fields the backend echoes.
type AuthResult struct {
	Message string
	Token   string
	UserID  int64
	Email   string
}

type authUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type authResponse struct {
	Message string   `json:"message"`
	User    authUser `json:"user"`
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return resp.result()
}

// Register creates an account; the backend logs the new user straight in and
// returns a token.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResult, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register-user", reg, &resp); err != nil {
		return nil, err
	}
	return resp.result()
}

func (r authResponse) result() (*AuthResult, error) {
	if r.User.Token == "" {
		return nil, fmt.Errorf("backend returned no token")
	}
	return &AuthResult{
		Message: r.Message,
		Token:   r.User.Token,
		UserID:  r.User.ID,
		Email:   r.User.Email,
	}, nil
}

// UserProfile fetches the signed-in user's profile.
func (c *Client) UserProfile(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	path := fmt.Sprintf("/users/profile/%d", userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/delete/%d", userID), nil, nil)
}

// RequestOTP starts the forgot-password flow for the given email.
func (c *Client) RequestOTP(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", payload, nil)
}

// VerifyOTP checks a one-time password sent by email.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	payload := map[string]string{"email": email, "otp": otp}
	return c.doJSON(ctx, http.MethodPost, "/auth/verify-otp", payload, nil)
}

// ResetPassword sets a new password after OTP verification.
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) error {
	payload := map[string]string{"email": email, "newPassword": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", payload, nil)
}

// ChangePassword changes the signed-in user's password.
func (c *Client) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	payload := map[string]string{
		"email":       email,
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}
	return c.doJSON(ctx, http.MethodPost, "/auth/change-password", payload, nil)
}
