package domain

import "time"

// AuthOutcome is the normalized result of every biometric operation.
// Succeeded is true only together with StatusSuccess; build values with
// Succeed and Fail rather than literals.
type AuthOutcome struct {
	Succeeded   bool       `json:"succeeded"`
	Status      Status     `json:"status"`
	Message     string     `json:"message"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func Succeed(message string, at time.Time) AuthOutcome {
	if message == "" {
		message = StatusSuccess.DefaultMessage()
	}
	return AuthOutcome{
		Succeeded:   true,
		Status:      StatusSuccess,
		Message:     message,
		CompletedAt: &at,
	}
}

func Fail(status Status, message string) AuthOutcome {
	if status == StatusSuccess || !IsValidStatus(status) {
		status = StatusError
	}
	if message == "" {
		message = status.DefaultMessage()
	}
	return AuthOutcome{
		Succeeded: false,
		Status:    status,
		Message:   message,
	}
}

func (o AuthOutcome) Valid() bool {
	if o.Succeeded != (o.Status == StatusSuccess) {
		return false
	}
	if !o.Succeeded && o.CompletedAt != nil {
		return false
	}
	return IsValidStatus(o.Status) && o.Message != ""
}
