package oauth2client

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// ValidateAuthorization examines the parameters an authorization server
// redirected back and checks the state value against the one sent in the
// authorization request. When a key repeats, the first value is compared.
// params is returned unchanged on a match so the caller can read code,
// access_token or error from it; a mismatch fails with StateMismatchError.
//
// Both sides omitting state counts as a match. A caller that forgets to
// send state therefore gets no CSRF protection from this check.
func ValidateAuthorization(params url.Values, state string) (url.Values, error) {
	if received := params.Get("state"); received != state {
		return nil, &StateMismatchError{Expected: state, Received: received}
	}
	return params, nil
}

// ValidateAuthorizationString parses a raw query or fragment string from a
// redirect callback (a leading "?" or "#" is tolerated, repeated keys keep
// every value) and validates it with ValidateAuthorization.
func ValidateAuthorizationString(raw, state string) (url.Values, error) {
	raw = strings.TrimPrefix(raw, "?")
	raw = strings.TrimPrefix(raw, "#")
	params, err := url.ParseQuery(raw)
	if err != nil {
		return nil, errors.Wrap(err, "[ValidateAuthorizationString] parsing redirect parameters")
	}
	return ValidateAuthorization(params, state)
}
