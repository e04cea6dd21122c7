/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package documents

import (
	"errors"
	"fmt"
)

// ErrorKind represents a kind of the submission failure.
type ErrorKind string

// Error kinds.
const (
	ErrKindInvalidConfiguration ErrorKind = "invalid_configuration"
	ErrKindInterrupted          ErrorKind = "interrupted"
	ErrKindRateLimit            ErrorKind = "rate_limit"
	ErrKindSerialization        ErrorKind = "serialization"
	ErrKindTransport            ErrorKind = "transport"
	ErrKindRemoteRejected       ErrorKind = "remote_rejected"
)

// Error is returned by NewClient and Client.Submit.
// StatusCode and Reason are set only for ErrKindRemoteRejected.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Reason     string
	Inner      error
}

var errorKindMessages = map[ErrorKind]string{
	ErrKindInvalidConfiguration: "invalid documents client configuration",
	ErrKindInterrupted:          "document submission interrupted",
	ErrKindRateLimit:            "acquire rate limit slot",
	ErrKindSerialization:        "serialize document",
	ErrKindTransport:            "send document",
}

func (e *Error) Error() string {
	if e.Kind == ErrKindRemoteRejected {
		return fmt.Sprintf("document rejected by registry: %d %s", e.StatusCode, e.Reason)
	}
	msg, ok := errorKindMessages[e.Kind]
	if !ok {
		msg = "document submission failed"
		if e.Kind != "" {
			msg += " (" + string(e.Kind) + ")"
		}
	}
	if e.Inner == nil {
		return msg
	}
	return msg + ": " + e.Inner.Error()
}

// Unwrap returns the next error in the error chain.
func (e *Error) Unwrap() error {
	return e.Inner
}

// IsKind checks whether err is (or wraps) *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var docErr *Error
	return errors.As(err, &docErr) && docErr.Kind == kind
}
