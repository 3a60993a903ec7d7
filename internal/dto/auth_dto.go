package dto

import (
	"time"

	"foundercompass/internal/entity"
)

type SignupRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanySize string `json:"companySize" validate:"required,oneof=15-35 36-60 61-95 96-200"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID              string     `json:"id"`
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	CompanySize     string     `json:"companySize"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	IsActive        bool       `json:"isActive"`
	ConsentAccepted bool       `json:"consentAccepted"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	return UserResponse{
		ID:              user.ID.String(),
		FullName:        user.FullName,
		Email:           user.Email,
		CompanySize:     string(user.CompanySize),
		CreatedAt:       user.CreatedAt,
		LastLoginAt:     user.LastLoginAt,
		IsActive:        user.IsActive,
		ConsentAccepted: user.ConsentAccepted,
	}
}
