package domain

type Status string

const (
	StatusSuccess      Status = "SUCCESS"
	StatusNotAvailable Status = "NOT_AVAILABLE"
	StatusNotEnrolled  Status = "NOT_ENROLLED"
	StatusUserCanceled Status = "USER_CANCELED"
	StatusLockedOut    Status = "LOCKED_OUT"
	StatusTimeout      Status = "TIMEOUT"
	StatusFailed       Status = "FAILED"
	StatusError        Status = "ERROR"

	// StatusBusy is produced only by the coordinator when a live challenge
	// is already outstanding. No platform table maps to it.
	StatusBusy Status = "BUSY"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusSuccess, StatusNotAvailable, StatusNotEnrolled, StatusUserCanceled,
		StatusLockedOut, StatusTimeout, StatusFailed, StatusError, StatusBusy:
		return true
	default:
		return false
	}
}

// DefaultMessage is the display text used when the platform supplies none.
func (s Status) DefaultMessage() string {
	switch s {
	case StatusSuccess:
		return MsgAuthenticationSuccessful
	case StatusNotAvailable:
		return MsgNotAvailable
	case StatusNotEnrolled:
		return MsgNotEnrolled
	case StatusUserCanceled:
		return MsgUserCanceled
	case StatusLockedOut:
		return MsgLockedOut
	case StatusTimeout:
		return MsgTimeout
	case StatusFailed:
		return MsgFailed
	case StatusBusy:
		return MsgBusy
	default:
		return MsgError
	}
}

func (s Status) String() string {
	return string(s)
}
