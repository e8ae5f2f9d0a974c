package userbook

type Status string

// StatusReserved is a valid stored value that no transition assigns: copies
// stay available while requests are pending.
const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusExchanged Status = "exchanged"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusExchanged:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
