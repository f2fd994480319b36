// Package discovery resolves OAuth2 endpoints from an authorization
// server's published metadata, so client configuration can start from just
// an issuer URL.
package discovery

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	oauth2client "github.com/jrsteele09/go-oauth2-client"
)

// Endpoints holds the endpoints published in an issuer's well-known
// metadata document.
type Endpoints struct {
	Issuer                string
	AuthorizationEndpoint string
	TokenEndpoint         string
}

// Resolve fetches the issuer's well-known metadata and returns its
// endpoints. The HTTP client used for the fetch can be overridden with
// oidc.ClientContext.
func Resolve(ctx context.Context, issuer string) (*Endpoints, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, errors.Wrapf(err, "[discovery.Resolve] fetching metadata for %s", issuer)
	}

	endpoint := provider.Endpoint()
	return &Endpoints{
		Issuer:                issuer,
		AuthorizationEndpoint: endpoint.AuthURL,
		TokenEndpoint:         endpoint.TokenURL,
	}, nil
}

// Options returns client options wiring the discovered endpoints into
// oauth2client.New:
//
//	endpoints, err := discovery.Resolve(ctx, issuer)
//	client, err := oauth2client.New(clientID, endpoints.Options()...)
func (e *Endpoints) Options() []oauth2client.Option {
	return []oauth2client.Option{
		oauth2client.WithAuthorizationEndpoint(e.AuthorizationEndpoint),
		oauth2client.WithTokenEndpoint(e.TokenEndpoint),
	}
}

// Endpoint adapts the discovered endpoints for code built on
// golang.org/x/oauth2.
func (e *Endpoints) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:  e.AuthorizationEndpoint,
		TokenURL: e.TokenEndpoint,
	}
}
