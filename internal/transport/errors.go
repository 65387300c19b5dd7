package transport

import "fmt"

// RemoteAPIError is any non-2xx response that is not an authentication
// failure. The raw body is kept verbatim for diagnostics.
type RemoteAPIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("remote API error %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// AuthError reports a 401 or 403 response: the credential is missing,
// expired or lacks the required scope.
type AuthError struct {
	StatusCode int
	URL        string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected (%d) for %s", e.StatusCode, e.URL)
}

// MalformedResponseError reports a 2xx response whose non-empty body could
// not be decoded as JSON. Snippet carries a truncated copy of the payload.
type MalformedResponseError struct {
	URL     string
	Snippet string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v (body: %s)", e.URL, e.Err, e.Snippet)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// TimeoutError reports that an outbound call exceeded its deadline.
type TimeoutError struct {
	URL string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out: %v", e.URL, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
