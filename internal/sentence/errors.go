package sentence

import "fmt"

// UnavailableError indicates the remote validator could not produce a verdict.
type UnavailableError struct {
	Reason string
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote validator unavailable: %s: %v", e.Reason, e.Err)
	}
	return "remote validator unavailable: " + e.Reason
}

func (e *UnavailableError) Unwrap() error { return e.Err }
