/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package documents

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"transport with cause", &Error{Kind: ErrKindTransport, Inner: cause}, "send document: boom"},
		{"transport without cause", &Error{Kind: ErrKindTransport}, "send document"},
		{"invalid configuration without cause", &Error{Kind: ErrKindInvalidConfiguration},
			"invalid documents client configuration"},
		{"interrupted without cause", &Error{Kind: ErrKindInterrupted}, "document submission interrupted"},
		{"serialization without cause", &Error{Kind: ErrKindSerialization}, "serialize document"},
		{"rate limit", &Error{Kind: ErrKindRateLimit, Inner: cause}, "acquire rate limit slot: boom"},
		{"remote rejected", &Error{Kind: ErrKindRemoteRejected, StatusCode: 400, Reason: "Bad Request"},
			"document rejected by registry: 400 Bad Request"},
		{"unknown kind", &Error{Kind: "quota", Inner: cause}, "document submission failed (quota): boom"},
		{"empty", &Error{}, "document submission failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.Equal(t, tt.want, tt.err.Error())
			})
		})
	}
}

func TestIsKind(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("submit a.json: %w", &Error{Kind: ErrKindTransport, Inner: cause})
	require.True(t, IsKind(err, ErrKindTransport))
	require.False(t, IsKind(err, ErrKindInterrupted))
	require.ErrorIs(t, err, cause)
	require.False(t, IsKind(cause, ErrKindTransport))
}
