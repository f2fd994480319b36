package oauth2client

import "context"

// ResourceOwnerPasswordCredentialsGrant implements the resource owner
// password credentials flow of RFC 6749 section 4.3, for legacy
// applications that collect the user's credentials directly.
type ResourceOwnerPasswordCredentialsGrant struct {
	client *Client
}

// NewResourceOwnerPasswordCredentialsGrant wraps client for the password flow.
func NewResourceOwnerPasswordCredentialsGrant(client *Client) *ResourceOwnerPasswordCredentialsGrant {
	return &ResourceOwnerPasswordCredentialsGrant{client: client}
}

// GetToken exchanges the resource owner's username and password for a token
// response (RFC 6749 section 4.3.2).
func (g *ResourceOwnerPasswordCredentialsGrant) GetToken(ctx context.Context, username, password string, params PasswordTokenParameters) (TokenResponse, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	putOptional(body, "scope", params.Scope)
	mergeExtra(body, params.Extra)
	return g.client.requestToken(ctx, PasswordGrantType, params.Query, body)
}
