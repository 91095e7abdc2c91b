package usecase

import (
	biodomain "github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

type LoginUserInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type BiometricLoginInput struct {
	Reason string `json:"reason" form:"reason" validate:"omitempty,reason"`
}

type LoginUserOutput struct {
	User    UserInfo               `json:"user"`
	Session SessionInfo            `json:"session"`
	Outcome *biodomain.AuthOutcome `json:"outcome,omitempty"`
	Message string                 `json:"message"`
}

type UserInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AccountNumber string `json:"accountNumber"`
}

type SessionInfo struct {
	Token     string `json:"token,omitempty"`
	Method    string `json:"method,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type LogoutOutput struct {
	Message string `json:"message"`
}
