package errs

// kindError is a distinct sentinel that also matches its taxonomy kind.
type kindError struct {
	cause error
	kind  error
}

func (e *kindError) Error() string        { return e.cause.Error() }
func (e *kindError) Unwrap() error        { return e.cause }
func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind returns a sentinel that Is matches against itself and kind, and
// against no other sentinel of the same kind.
func NewKind(kind error, msg string) error {
	return &kindError{cause: New(msg), kind: kind}
}

// classified attaches a sentinel to a concrete cause.
type classified struct {
	cause    error
	sentinel error
}

func (e *classified) Error() string { return e.sentinel.Error() + ": " + e.cause.Error() }
func (e *classified) Unwrap() error { return e.cause }
func (e *classified) Is(target error) bool {
	return target == e.sentinel || Is(e.sentinel, target)
}

// Classify keeps err in the chain and makes the result match sentinel and
// everything sentinel matches.
func Classify(err, sentinel error) error {
	if err == nil {
		return sentinel
	}
	if err == sentinel {
		return err
	}
	return &classified{cause: err, sentinel: sentinel}
}
