// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a POS operator
type LoginRequest struct {
	// Email is the operator's email address.
	Email string `json:"email" binding:"required,email" example:"cashier@store.example"`
	// Password is the operator's password.
	Password string `json:"password" binding:"required,min=6"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with JWT tokens
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token"`
	// RefreshToken is the JWT refresh token.
	RefreshToken string `json:"refresh_token"`
	// User contains the authenticated operator information.
	User UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims represents the application JWT claims.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
	Roles  []string           `json:"roles"`
}

// UserResponse represents operator information in API responses.
type UserResponse struct {
	// Email is the operator's email address.
	Email string `json:"email" example:"cashier@store.example"`
	// Name is the operator's display name.
	Name string `json:"name,omitempty"`
	// Roles lists the operator's roles (cashier, manager).
	Roles []string `json:"roles,omitempty"`
} // @name UserResponse

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}
