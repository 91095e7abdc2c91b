package usecase

import (
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

type SecuritySettings struct {
	Available  bool         `json:"available"`
	Enabled    bool         `json:"enabled"`
	KindLabel  string       `json:"kindLabel"`
	EnrolledAt *time.Time   `json:"enrolledAt,omitempty"`
	State      domain.State `json:"state"`
}

type ToggleBiometricInput struct {
	Enable bool   `json:"enable"`
	Reason string `json:"reason" validate:"omitempty,reason"`
}

type ToggleBiometricOutput struct {
	Enabled    bool                `json:"enabled"`
	EnrolledAt *time.Time          `json:"enrolledAt,omitempty"`
	Outcome    *domain.AuthOutcome `json:"outcome,omitempty"`
	Message    string              `json:"message"`
}
