package models

import "time"

type User struct {
	ID              int       `json:"id"`
	Username        string    `json:"username"`
	UserDisplayName string    `json:"user_display_name"`
	Status          int       `json:"status"`
	CreateDate      time.Time `json:"create_date"`
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	UserDisplayName string `json:"user_display_name"`
}

// LoginRequest arrives form-encoded, OAuth2 password-flow style.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	SessionID   string `json:"session_id"`
}
