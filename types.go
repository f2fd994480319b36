package oauth2client

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// The authorization endpoint returns a code that must be exchanged for
	// tokens at the token endpoint.
	// Example: /oauth/authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"

	// TokenResponseType indicates the implicit flow.
	// The access token is returned directly in the redirect fragment,
	// without a token-endpoint exchange.
	// Example: https://client.example.com/callback#access_token=...&state=xyz
	TokenResponseType ResponseType = "token"
)

// GrantType represents the OAuth 2.0 grant type sent to the token endpoint.
// Determines which credentials are exchanged for tokens.
type GrantType string

const (
	// AuthorizationCodeGrantType exchanges an authorization code for tokens.
	// Token request includes: code, client_id, redirect_uri, code_verifier (if PKCE)
	AuthorizationCodeGrantType GrantType = "authorization_code"

	// PasswordGrantType exchanges the resource owner's own credentials for
	// tokens. Legacy applications only; see RFC 6749 section 4.3.
	// Token request includes: username, password, scope
	PasswordGrantType GrantType = "password"

	// ClientCredentialsGrantType allows machine-to-machine authentication
	// with no user context.
	// Token request includes: client_id, client_secret (or assertion), scope
	ClientCredentialsGrantType GrantType = "client_credentials"

	// RefreshTokenGrantType exchanges a refresh token for new tokens without
	// re-authenticating the user.
	// Token request includes: refresh_token, scope
	RefreshTokenGrantType GrantType = "refresh_token"
)

// CodeMethodType represents the PKCE (Proof Key for Code Exchange) challenge
// method of RFC 7636.
type CodeMethodType string

const (
	// CodeMethodTypeS256 indicates SHA-256 hashing is used for the code challenge.
	// Client sends: code_challenge = BASE64URL(SHA256(code_verifier))
	CodeMethodTypeS256 CodeMethodType = "S256"

	// CodeMethodTypePlain means no hashing, the verifier is sent directly.
	// Weaker than S256, only protects against passive attacks.
	CodeMethodTypePlain CodeMethodType = "plain"
)
