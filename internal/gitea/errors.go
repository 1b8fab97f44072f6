package gitea

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is the catch-all error for failed requests
	ErrTransport = errors.New("gitea request failed")

	// ErrForbidden is returned when the forge answers 403
	ErrForbidden = errors.New("gitea access forbidden")

	// ErrNoAuthMode is returned when an authenticated request is made without credentials
	ErrNoAuthMode = errors.New("no authentication configured")
)

const (
	forbiddenMessage = "Your login credentials are not right and/or you don't have sufficient access rights"
	noAuthMessage    = "I should auth but I can't. Somethings seems wrong"
)

// RequestError describes a failed request. It matches ErrTransport with errors.Is.
type RequestError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GET %s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("GET %s: unexpected status %d", e.Path, e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Is(target error) bool {
	return target == ErrTransport
}
