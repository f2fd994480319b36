package discovery_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	oauth2client "github.com/jrsteele09/go-oauth2-client"
	"github.com/jrsteele09/go-oauth2-client/discovery"
	"github.com/stretchr/testify/require"
)

func newMetadataServer(t *testing.T) *httptest.Server {
	t.Helper()
	var issuer string
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                 issuer,
			"authorization_endpoint": issuer + "/oauth/authorize",
			"token_endpoint":         issuer + "/oauth/token",
			"jwks_uri":               issuer + "/.well-known/jwks.json",
		})
	})
	srv := httptest.NewServer(mux)
	issuer = srv.URL
	t.Cleanup(srv.Close)
	return srv
}

func TestResolve(t *testing.T) {
	srv := newMetadataServer(t)

	endpoints, err := discovery.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)

	require.Equal(t, srv.URL, endpoints.Issuer)
	require.Equal(t, srv.URL+"/oauth/authorize", endpoints.AuthorizationEndpoint)
	require.Equal(t, srv.URL+"/oauth/token", endpoints.TokenEndpoint)

	t.Run("options configure a client", func(t *testing.T) {
		client, err := oauth2client.New("client-1", endpoints.Options()...)
		require.NoError(t, err)

		rawURL, err := oauth2client.NewAuthorizationCodeGrant(client).AuthorizationURL(oauth2client.AuthorizationParameters{})
		require.NoError(t, err)
		require.Contains(t, rawURL, srv.URL+"/oauth/authorize?")
	})

	t.Run("x/oauth2 endpoint adapter", func(t *testing.T) {
		endpoint := endpoints.Endpoint()
		require.Equal(t, endpoints.AuthorizationEndpoint, endpoint.AuthURL)
		require.Equal(t, endpoints.TokenEndpoint, endpoint.TokenURL)
	})
}

func TestResolveUnreachableIssuer(t *testing.T) {
	_, err := discovery.Resolve(context.Background(), "http://127.0.0.1:1/missing")
	require.Error(t, err)
}
