package usecase

import (
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

type ChallengeInput struct {
	Reason string `json:"reason" form:"reason" validate:"omitempty,reason"`
}

type StoreCredentialsInput struct {
	UserID string `json:"userId" form:"userId" validate:"required,max=128"`
	Email  string `json:"email" form:"email" validate:"required,email"`
}

type CredentialsOutput struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type StatusOutput struct {
	Available  bool         `json:"available"`
	Enabled    bool         `json:"enabled"`
	State      domain.State `json:"state"`
	KindLabel  string       `json:"kindLabel"`
	Kind       domain.Kind  `json:"kind"`
	EnrolledAt *time.Time   `json:"enrolledAt,omitempty"`
	LastAuthAt *time.Time   `json:"lastAuthAt,omitempty"`
}

type ResultOutput struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
}
