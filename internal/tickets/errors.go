package tickets

import (
	"fmt"

	appErrors "tickboard/internal/errors"
)

// FetchError reports a failed attempt to load the ticket feed. Transport
// failures, non-2xx responses and undecodable bodies all surface as a
// FetchError so callers have a single type to recover from.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch tickets from %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("fetch tickets from %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrorCode lets appErrors.CodeOf classify transport failures. Parse failures
// carry their own structured code in Err, which CodeOf finds first.
func (e *FetchError) ErrorCode() appErrors.Code {
	return appErrors.CodeFetchFailed
}

func parseError(msg string, err error) error {
	return appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("%s: %v", msg, err), err)
}
