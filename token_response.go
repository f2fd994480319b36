package oauth2client

// TokenResponse is the token endpoint's decoded JSON body, returned
// verbatim. Success and error responses share this shape (RFC 6749
// sections 5.1 and 5.2), and providers vary in which fields they send, so
// the response is deliberately not modeled as a typed success/error union.
// The accessors below are conveniences that read the conventional fields
// without constraining the structure.
type TokenResponse map[string]any

func (t TokenResponse) str(key string) string {
	v, _ := t[key].(string)
	return v
}

// AccessToken returns the access_token field, or "" when absent.
func (t TokenResponse) AccessToken() string { return t.str("access_token") }

// TokenType returns the token_type field, e.g. "Bearer".
func (t TokenResponse) TokenType() string { return t.str("token_type") }

// RefreshToken returns the refresh_token field, or "" when the server
// issued none.
func (t TokenResponse) RefreshToken() string { return t.str("refresh_token") }

// IDToken returns the OpenID Connect id_token field, present only when the
// "openid" scope was granted. It is returned raw; this package does not
// parse or validate JWTs.
func (t TokenResponse) IDToken() string { return t.str("id_token") }

// Scope returns the granted scope, which may be narrower than requested.
func (t TokenResponse) Scope() string { return t.str("scope") }

// ExpiresIn returns the access token lifetime in seconds, or 0 when the
// field is absent or not a number.
func (t TokenResponse) ExpiresIn() int {
	v, _ := t["expires_in"].(float64)
	return int(v)
}

// IsError reports whether the response is an RFC 6749 section 5.2 error
// structure. Protocol errors arrive as data, not as Go errors.
func (t TokenResponse) IsError() bool {
	_, ok := t["error"]
	return ok
}

// ErrorCode returns the error field, e.g. "invalid_grant".
func (t TokenResponse) ErrorCode() string { return t.str("error") }

// ErrorDescription returns the human-readable error_description field.
func (t TokenResponse) ErrorDescription() string { return t.str("error_description") }
