package domain

type State string

const (
	StateUnchecked         State = "UNCHECKED"
	StateUnavailable       State = "UNAVAILABLE"
	StateAvailableDisabled State = "AVAILABLE_DISABLED"
	StateAvailableEnabled  State = "AVAILABLE_ENABLED"
)

func (s State) IsAvailable() bool {
	return s == StateAvailableDisabled || s == StateAvailableEnabled
}
