package provider

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("provider rejected client credentials")
	ErrAccessForbidden    = errors.New("provider access forbidden")
	ErrProviderServer     = errors.New("provider server error")
	ErrInvalidParameters  = errors.New("provider rejected request parameters")
	ErrEndpointNotFound   = errors.New("provider endpoint not found")
	ErrTokenExpired       = errors.New("provider token expired")
	ErrMalformedResponse  = errors.New("provider response missing data object")
	ErrNetwork            = errors.New("provider unreachable")
)

// StatusError reports a non-2xx provider status that does not map onto one of
// the sentinel errors above.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.Code)
}
