package client

import "fmt"

// Error taxonomy of the booking API. AuthError is fatal to the workflow (the
// caller must re-prompt for credentials), TransportError is retryable by the
// caller, ParseError marks an unexpected response shape. None of them is
// retried here. A business rejection of an order is not an error at all: it
// travels in OrderResult with the server's body verbatim.

type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error in %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected response shape in %s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
