package domain

import (
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	CompanyCode  string    `json:"company_code,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRole string

const (
	UserRoleCustomer   UserRole = "customer"
	UserRoleSpecialist UserRole = "specialist"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleCustomer || r == UserRoleSpecialist
}

// DisplayName is the name shown in listings and matched by the search clause:
// company name for business accounts, "first last" otherwise.
func (u User) DisplayName() string {
	if u.CompanyName != "" {
		return u.CompanyName
	}
	return u.FirstName + " " + u.LastName
}

type CreateUserDTO struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Role        UserRole `json:"role" binding:"required,oneof=customer specialist"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	CompanyName string   `json:"company_name"`
	CompanyCode string   `json:"company_code"`
	Phone       string   `json:"phone"`
}

type UpdateUserDTO struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	CompanyName *string `json:"company_name"`
	CompanyCode *string `json:"company_code"`
	Phone       *string `json:"phone"`
	IsActive    *bool   `json:"is_active"`
}

type PasswordUpdateDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
