package domain

import "time"

type RegisterRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Role        UserRole `json:"role" binding:"required,oneof=customer specialist"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	CompanyName string   `json:"company_name"`
	CompanyCode string   `json:"company_code"`
	Phone       string   `json:"phone"`

	// Optional specialist profile created in the same flow.
	Profile *CreateProfileDTO `json:"profile"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	RefreshToken string    `json:"refresh_token"`
	UserAgent    string    `json:"user_agent"`
	IP           string    `json:"ip"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
