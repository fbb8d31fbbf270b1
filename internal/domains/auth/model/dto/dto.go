package dto

import (
	"hotel/infras/jwt"
	userDto "hotel/internal/domains/user/model/dto"
)

type RegisterRequest struct {
	FirstName     string `json:"firstName"     validate:"required,max=100"`
	MiddleName    string `json:"middleName"    validate:"omitempty,max=100"`
	LastName      string `json:"lastName"      validate:"required,max=100"`
	DateOfBirth   string `json:"dateOfBirth"   validate:"required,isodate"`
	Email         string `json:"email"         validate:"required,email"`
	ContactNumber string `json:"contactNumber" validate:"required,max=20"`
	Username      string `json:"username"      validate:"required,min=4,max=50"`
	Password      string `json:"password"      validate:"required,min=8,max=72"`
}

// ToCreateUserRequest maps a self-service signup onto a regular user account.
func (r *RegisterRequest) ToCreateUserRequest() userDto.CreateUserRequest {
	return userDto.CreateUserRequest{
		Username:      r.Username,
		Email:         r.Email,
		Password:      r.Password,
		FirstName:     r.FirstName,
		MiddleName:    r.MiddleName,
		LastName:      r.LastName,
		DateOfBirth:   r.DateOfBirth,
		ContactNumber: r.ContactNumber,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
	TokenType    string               `json:"tokenType"`
	ExpiresIn    int64                `json:"expiresIn"`
	User         userDto.UserResponse `json:"user"`
}

func (a *AuthResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	a.AccessToken = tokenPair.AccessToken
	a.RefreshToken = tokenPair.RefreshToken
	a.TokenType = tokenPair.TokenType
	a.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}
