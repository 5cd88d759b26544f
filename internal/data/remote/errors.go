package remote

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindTransport covers requests that never produced a response.
	KindTransport Kind = "transport"
	// KindAuthorization covers missing, invalid or expired credentials.
	KindAuthorization Kind = "authorization"
	// KindNotFound covers 404 responses.
	KindNotFound Kind = "not_found"
	// KindRejected covers every other non-2xx response.
	KindRejected Kind = "rejected"
)

// Error is the failure value surfaced for any request that did not succeed.
// Callers branch on Kind; Message is safe to show to a user.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func kindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return "", false
}

func IsTransport(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindTransport
}

func IsAuthorization(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindAuthorization
}

func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}
