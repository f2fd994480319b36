package oauth2client

import "fmt"

// ConfigurationError reports a required endpoint that was not configured on
// the Client. It is fatal and not retryable.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("oauth2client: %s is not configured", e.Missing)
}

// ServerError reports a token-endpoint response with status 500 or above.
// The exchange may be retried by the caller; the Client itself never
// retries.
type ServerError struct {
	StatusCode int
	Status     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("oauth2client: token endpoint returned %s", e.Status)
}

// StateMismatchError reports a redirect whose state parameter does not match
// the value sent in the authorization request. The flow must be aborted;
// a mismatch usually indicates a forged callback.
// The state values are kept out of the message so it can be logged safely;
// inspect the fields if needed.
type StateMismatchError struct {
	Expected string
	Received string
}

func (e *StateMismatchError) Error() string {
	return "oauth2client: state mismatch"
}
