package oauth2client

import "context"

// AuthorizationCodeGrant implements the authorization code flow of RFC 6749
// section 4.1. It can be used by confidential or public clients; public
// clients should also send a PKCE challenge (see NewPKCE).
type AuthorizationCodeGrant struct {
	client *Client
}

// NewAuthorizationCodeGrant wraps client for the authorization code flow.
func NewAuthorizationCodeGrant(client *Client) *AuthorizationCodeGrant {
	return &AuthorizationCodeGrant{client: client}
}

// AuthorizationURL generates the URL the resource owner visits to approve
// the request (RFC 6749 section 4.1.1).
//
// Persist params.State independently: when the response arrives at the
// redirect URI, ValidateAuthorization checks the returned state against it.
func (g *AuthorizationCodeGrant) AuthorizationURL(params AuthorizationParameters) (string, error) {
	return g.client.authorizationURL(CodeResponseType, params)
}

// GetToken exchanges the authorization code received at the redirect URI
// for a token response (RFC 6749 section 4.1.3).
func (g *AuthorizationCodeGrant) GetToken(ctx context.Context, code string, params AuthorizationCodeTokenParameters) (TokenResponse, error) {
	body := map[string]string{"code": code}
	putOptional(body, "redirect_uri", params.RedirectURI)
	putOptional(body, "code_verifier", params.CodeVerifier)
	mergeExtra(body, params.Extra)
	return g.client.requestToken(ctx, AuthorizationCodeGrantType, params.Query, body)
}
