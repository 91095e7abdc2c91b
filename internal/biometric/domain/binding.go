package domain

import "time"

// Binding links the device's biometric capability to an application
// identity. A Binding with Enabled false carries no identity: any stored
// user fields are stale and are not loaded.
type Binding struct {
	Enabled    bool
	UserID     string
	Email      string
	Kind       Kind
	EnabledAt  *time.Time
	LastAuthAt *time.Time
}

func (b Binding) HasCredentials() bool {
	return b.Enabled && b.UserID != "" && b.Email != ""
}
