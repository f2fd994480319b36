package oauth2client

import (
	"net/url"
	"strings"

	"github.com/jrsteele09/go-oauth2-client/internal/oauthutil"
)

// Optional string parameters are pointers: nil means "omit the parameter"
// (or "keep the configured default" in a token-request body), while a
// pointer to the empty string is sent as an explicitly empty value. Some
// identity providers accept an empty scope to represent the default scope.

// String returns a pointer to v, for filling optional parameter fields.
func String(v string) *string {
	return oauthutil.Ptr(v)
}

// Scopes joins the given scopes into the space-delimited, case-sensitive
// string form of RFC 6749 section 3.3, preserving order.
func Scopes(scopes ...string) *string {
	return oauthutil.Ptr(strings.Join(scopes, " "))
}

// AuthorizationParameters holds the optional parameters of an authorization
// request (RFC 6749 sections 4.1.1 and 4.2.1). They are serialized into the
// authorization URL; unset fields are omitted entirely.
type AuthorizationParameters struct {
	// RedirectURI is where the authorization response will be sent.
	// Optional: the server falls back to the pre-registered URI.
	// Echoed verbatim; the same value must be repeated in the token request.
	RedirectURI *string

	// Scope names the requested permissions, space-delimited.
	// Build it with Scopes("openid", "profile") or pass a preformatted
	// string unchanged with String.
	Scope *string

	// State is an opaque value round-tripped through the redirect for CSRF
	// protection. Persist it and hand it to ValidateAuthorization when the
	// callback arrives. NewState generates a suitable value.
	State *string

	// CodeChallenge is the PKCE challenge derived from the code verifier.
	// See NewPKCE.
	CodeChallenge *string

	// CodeChallengeMethod says how CodeChallenge was derived ("S256" or
	// "plain"). Omitted when empty.
	CodeChallengeMethod CodeMethodType

	// Extra carries provider-specific parameters (nonce, prompt, audience,
	// ...) appended to the URL as-is. Keys here override the named fields
	// on collision.
	Extra map[string]string
}

// AuthorizationCodeTokenParameters holds the optional parameters of an
// authorization-code token request (RFC 6749 section 4.1.3).
type AuthorizationCodeTokenParameters struct {
	// RedirectURI is required if redirect_uri was included in the
	// authorization request, and the values must be identical byte for
	// byte. Passed through verbatim; enforcing the match is the server's
	// job.
	RedirectURI *string

	// CodeVerifier is the PKCE verifier matching the code_challenge sent in
	// the authorization request.
	CodeVerifier *string

	// Extra carries additional body parameters. Keys here override the
	// configured default body and the named fields.
	Extra map[string]string

	// Query is sent as the token request's URL query string. Most
	// providers need none.
	Query url.Values
}

// PasswordTokenParameters holds the optional parameters of a resource owner
// password credentials token request (RFC 6749 section 4.3.2).
type PasswordTokenParameters struct {
	Scope *string
	Extra map[string]string
	Query url.Values
}

// ClientCredentialsTokenParameters holds the optional parameters of a
// client credentials token request (RFC 6749 section 4.4.2).
type ClientCredentialsTokenParameters struct {
	Scope *string
	Extra map[string]string
	Query url.Values
}

// RefreshTokenParameters holds the optional parameters of a refresh token
// request (RFC 6749 section 6).
type RefreshTokenParameters struct {
	// Scope must not name any scope the original grant did not include.
	Scope *string
	Extra map[string]string
	Query url.Values
}

func setOptional(values url.Values, key string, v *string) {
	if v != nil {
		values.Set(key, *v)
	}
}

func putOptional(body map[string]string, key string, v *string) {
	if v != nil {
		body[key] = *v
	}
}

func mergeExtra(body map[string]string, extra map[string]string) {
	for k, v := range extra {
		body[k] = v
	}
}
