package oauth2client

// ImplicitGrant implements the implicit flow of RFC 6749 section 4.2,
// which obtains access tokens (but no refresh token) for public clients
// operating a particular redirection URI, typically in-browser scripts.
//
// There is no GetToken: the access token arrives directly in the redirect
// fragment and never passes through this client. Hand the fragment to
// ValidateAuthorizationString and read access_token from the result.
type ImplicitGrant struct {
	client *Client
}

// NewImplicitGrant wraps client for the implicit flow.
func NewImplicitGrant(client *Client) *ImplicitGrant {
	return &ImplicitGrant{client: client}
}

// AuthorizationURL generates the URL the resource owner visits to approve
// the request (RFC 6749 section 4.2.1).
func (g *ImplicitGrant) AuthorizationURL(params AuthorizationParameters) (string, error) {
	return g.client.authorizationURL(TokenResponseType, params)
}
