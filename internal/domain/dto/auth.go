package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

// LoginRequest carries user credentials for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"tech@lab.example"`
	Password string `json:"password" binding:"required" example:"s3cret"`
} // @name LoginRequest

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
} // @name RegisterRequest

// TokenResponse returns an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"900"`
} // @name TokenResponse

// UserResponse is the public view of a user account.
type UserResponse struct {
	Email string `json:"email" example:"tech@lab.example"`
	Name  string `json:"name" example:"Lab Tech"`
} // @name UserResponse

// LoginResponse returns the issued token together with the user.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type" example:"Bearer"`
	ExpiresIn int64        `json:"expires_in" example:"900"`
	User      UserResponse `json:"user"`
} // @name LoginResponse

// Claims are the application claims embedded in an access token.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
}
