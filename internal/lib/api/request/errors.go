package request

import (
	"errors"
	"fmt"
)

// NetworkMessage is the text of every NetworkError.
const NetworkMessage = "Network error or CORS issue. Please check connection and server configuration."

// ErrNetwork matches any NetworkError with errors.Is.
var ErrNetwork = errors.New("network unreachable")

// ErrUnexpectedContent is returned by the typed helpers when a successful
// response carries a body kind they cannot convert.
var ErrUnexpectedContent = errors.New("unexpected response content")

// HTTPError is a response with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d, message: %s", e.StatusCode, e.Message)
}

// NetworkError means the server could not be reached at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return NetworkMessage
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// StatusCode returns the status of an HTTPError anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
