package platform

import (
	"context"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

type Platform string

const (
	PlatformAndroid   Platform = "android"
	PlatformIOS       Platform = "ios"
	PlatformSimulated Platform = "simulated"
)

func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case PlatformAndroid, PlatformIOS, PlatformSimulated:
		return Platform(s), true
	default:
		return "", false
	}
}

// Result is what a native biometric prompt reports back. Code is the
// platform-native error code and is nil when the platform gave none.
type Result struct {
	Success  bool
	Code     *int
	Message  string
	Canceled bool
	TimedOut bool
}

func Code(c int) *int {
	return &c
}

func Failure(code int, message string) Result {
	return Result{Code: Code(code), Message: message}
}

//go:generate mockgen -destination=../test/mock_provider.go -package=test github.com/Suraj999-github/MauiBankApp/internal/biometric/platform Provider
type Provider interface {
	Platform() Platform
	CheckAvailability(ctx context.Context) (bool, error)
	Challenge(ctx context.Context, title, reason string) (Result, error)
	Kind(ctx context.Context) (domain.Kind, error)
	KindLabel(ctx context.Context) (string, error)
}

// MapCode translates a platform-native error code. Codes outside the
// platform's table map to StatusError.
func (p Platform) MapCode(code int) domain.Status {
	var table map[int]domain.Status
	switch p {
	case PlatformIOS:
		table = iosStatusByCode
	case PlatformAndroid, PlatformSimulated:
		table = androidStatusByCode
	}

	if s, ok := table[code]; ok {
		return s
	}
	return domain.StatusError
}

// Normalize reduces a native result to a status and a display message.
func (p Platform) Normalize(r Result) (domain.Status, string) {
	var status domain.Status
	switch {
	case r.Success:
		status = domain.StatusSuccess
	case r.Canceled:
		status = domain.StatusUserCanceled
	case r.TimedOut:
		status = domain.StatusTimeout
	case r.Code == nil:
		status = domain.StatusFailed
	default:
		status = p.MapCode(*r.Code)
	}

	msg := r.Message
	if msg == "" {
		msg = status.DefaultMessage()
	}
	return status, msg
}
