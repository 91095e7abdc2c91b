package usecase

import (
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/users/domain"
)

type UserProfileResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	AccountNumber string  `json:"account_number"`
	Balance       string  `json:"balance"`
	MemberSince   string  `json:"member_since"`
	LastLoginAt   *string `json:"last_login_at"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" form:"name" validate:"omitempty,min=2,max=80"`
	Email *string `json:"email,omitempty" form:"email" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty" form:"phone" validate:"omitempty,min=7,max=32"`
}

func (r UpdateUserRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil
}

func ToUserProfileResponse(user *domain.User) UserProfileResponse {
	var lastLoginAt *string
	if user.LastLoginAt != nil {
		lastLoginAtStr := user.LastLoginAt.UTC().Format(time.RFC3339)
		lastLoginAt = &lastLoginAtStr
	}

	return UserProfileResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		AccountNumber: user.MaskedAccountNumber(),
		Balance:       user.Balance.StringFixed(2),
		MemberSince:   user.CreatedAt.UTC().Format("2006-01-02"),
		LastLoginAt:   lastLoginAt,
	}
}
