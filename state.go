package oauth2client

import "github.com/google/uuid"

// NewState returns an opaque value suitable for the state parameter of an
// authorization request. The caller must persist it until the redirect
// comes back and pass it to ValidateAuthorization.
func NewState() string {
	return uuid.New().String()
}
