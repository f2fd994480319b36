package oauth2client

import "context"

// ClientCredentialsGrant implements the client credentials flow of RFC 6749
// section 4.4, used by backend applications acting on their own behalf.
type ClientCredentialsGrant struct {
	client *Client
}

// NewClientCredentialsGrant wraps client for the client credentials flow.
func NewClientCredentialsGrant(client *Client) *ClientCredentialsGrant {
	return &ClientCredentialsGrant{client: client}
}

// GetToken requests a token using the client's own credentials (RFC 6749
// section 4.4.2). The credentials come from the Client: either the client
// secret via HTTP Basic auth, or body parameters supplied through
// WithDefaultBody.
func (g *ClientCredentialsGrant) GetToken(ctx context.Context, params ClientCredentialsTokenParameters) (TokenResponse, error) {
	body := map[string]string{}
	putOptional(body, "scope", params.Scope)
	mergeExtra(body, params.Extra)
	return g.client.requestToken(ctx, ClientCredentialsGrantType, params.Query, body)
}
