package domain

import "strings"

type Kind string

const (
	KindUnspecified Kind = "UNSPECIFIED"
	KindFingerprint Kind = "FINGERPRINT"
	KindFace        Kind = "FACE"
)

func ParseKind(s string) Kind {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FINGERPRINT", "TOUCH_ID", "TOUCHID":
		return KindFingerprint
	case "FACE", "FACE_ID", "FACEID":
		return KindFace
	default:
		return KindUnspecified
	}
}

// Label is the generic display name for a kind. Platform adapters may
// supply a more specific one (e.g. "Face ID").
func (k Kind) Label() string {
	switch k {
	case KindFingerprint:
		return "Fingerprint"
	case KindFace:
		return "Face"
	default:
		return "Biometric"
	}
}
