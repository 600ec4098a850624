package tempo

import (
	"fmt"
	"strings"
)

// TransportError reports a failed HTTP exchange: the request never reached
// the API, or the API answered with a non-2xx status.
type TransportError struct {
	Status int // 0 when the request failed before a response arrived
	Err    error
	Body   string
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("API request failed with status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("HTTP request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError reports a well-formed response carrying a top-level errors
// list instead of the expected result.
type RemoteError struct {
	Errors []GraphQLError
}

func (e *RemoteError) Error() string {
	if len(e.Errors) == 0 {
		return "remote error with empty errors list"
	}
	messages := make([]string, len(e.Errors))
	for i, ge := range e.Errors {
		messages[i] = ge.Message
	}
	return "remote error: " + strings.Join(messages, "; ")
}
