package gateway

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a call to the DestiMatch API failed.
type ErrorKind string

const (
	// KindNetwork means no response was received.
	KindNetwork ErrorKind = "network"
	// KindHTTPStatus means the API answered outside the 2xx range.
	KindHTTPStatus ErrorKind = "http_status"
	// KindDecode means a 2xx body could not be decoded.
	KindDecode ErrorKind = "decode"
)

// GenericMessage is used when the API does not provide a readable message.
const GenericMessage = "Erreur lors du chargement"

// Error is returned by every Client operation that fails.
type Error struct {
	Kind    ErrorKind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("gateway %s: status %d: %s", e.Op, e.Status, e.Message)
	case KindDecode:
		return fmt.Sprintf("gateway %s: decode response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a gateway Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var gwErr *Error
	return errors.As(err, &gwErr) && gwErr.Kind == kind
}

// StatusCode returns the upstream HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) && gwErr.Kind == KindHTTPStatus {
		return gwErr.Status, true
	}
	return 0, false
}

// Message returns a message fit for a user-facing notice. Only upstream
// messages are exposed; transport and decode details are not.
func Message(err error) string {
	var gwErr *Error
	if errors.As(err, &gwErr) && gwErr.Kind == KindHTTPStatus && gwErr.Message != "" {
		return gwErr.Message
	}
	return GenericMessage
}
