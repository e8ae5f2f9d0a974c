package errs

// Caller-facing error taxonomy. Concrete errors are tied to one of these with
// NewKind or Classify so transport layers can branch on Is.
var (
	ErrNotFound               = New("not found")
	ErrUnauthorized           = New("unauthorized")
	ErrSelfExchangeForbidden  = New("self exchange forbidden")
	ErrDuplicateOwnership     = New("duplicate ownership")
	ErrInvalidStateTransition = New("invalid state transition")
	ErrConflict               = New("conflict")

	ErrValidation = New("validation failed")
)

// ErrUnauthenticated is the anonymous-caller flavour of ErrUnauthorized.
var ErrUnauthenticated = NewKind(ErrUnauthorized, "caller is not authenticated")
