// Package oauth2client is a generic, spec-compliant client for the OAuth 2.0
// Authorization Framework (RFC 6749, https://tools.ietf.org/html/rfc6749).
//
// It builds authorization URLs and performs token-endpoint requests for each
// of the standard grant types. The low-level Client holds the client identity
// and endpoint configuration; the grant types (AuthorizationCodeGrant,
// ImplicitGrant, ResourceOwnerPasswordCredentialsGrant,
// ClientCredentialsGrant) are thin wrappers that remind you which parameters
// each flow needs.
//
// Usage:
//
//	client, err := oauth2client.New("web-app-client",
//		oauth2client.WithClientSecret("super-secret-value"),
//		oauth2client.WithAuthorizationEndpoint("https://issuer.example.com/oauth/authorize"),
//		oauth2client.WithTokenEndpoint("https://issuer.example.com/oauth/token"),
//	)
//
//	grant := oauth2client.NewAuthorizationCodeGrant(client)
//	state := oauth2client.NewState()
//	url, err := grant.AuthorizationURL(oauth2client.AuthorizationParameters{
//		RedirectURI: oauth2client.String("https://myapp.com/callback"),
//		Scope:       oauth2client.Scopes("openid", "profile"),
//		State:       oauth2client.String(state),
//	})
//
//	// ... resource owner visits url, authorization server redirects back ...
//
//	params, err := oauth2client.ValidateAuthorizationString(rawQuery, state)
//	tokens, err := grant.GetToken(ctx, params.Get("code"),
//		oauth2client.AuthorizationCodeTokenParameters{
//			RedirectURI: oauth2client.String("https://myapp.com/callback"),
//		})
//
// Token responses are returned verbatim as decoded JSON. Per RFC 6749
// section 5.2 even protocol errors are valid JSON structures, so a 4xx
// response is data, not a Go error; check TokenResponse.IsError.
//
// The package performs no token storage, no refresh scheduling and no
// retries. HTTP transport concerns (timeouts, proxies, TLS) belong to the
// injected HTTP client.
package oauth2client
