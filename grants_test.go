package oauth2client_test

import (
	"context"
	"net/http"
	"testing"

	oauth2client "github.com/jrsteele09/go-oauth2-client"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationCodeGrant_GetToken(t *testing.T) {
	ctx := context.Background()

	t.Run("sends code and redirect URI", func(t *testing.T) {
		srv, captured := newTokenServer(t, http.StatusOK, `{"access_token":"tok-1"}`)
		client, err := oauth2client.New("client-1", oauth2client.WithTokenEndpoint(srv.URL))
		require.NoError(t, err)

		resp, err := oauth2client.NewAuthorizationCodeGrant(client).GetToken(ctx, "SplxlOBeZQQYbYS6WxSbIA",
			oauth2client.AuthorizationCodeTokenParameters{
				RedirectURI: oauth2client.String("https://app.example.com/callback"),
			})
		require.NoError(t, err)

		require.Equal(t, "authorization_code", captured.form.Get("grant_type"))
		require.Equal(t, "SplxlOBeZQQYbYS6WxSbIA", captured.form.Get("code"))
		require.Equal(t, "https://app.example.com/callback", captured.form.Get("redirect_uri"))
		require.Equal(t, "tok-1", resp.AccessToken())
	})

	t.Run("omits redirect URI when unset", func(t *testing.T) {
		srv, captured := newTokenServer(t, http.StatusOK, `{}`)
		client, err := oauth2client.New("client-1", oauth2client.WithTokenEndpoint(srv.URL))
		require.NoError(t, err)

		_, err = oauth2client.NewAuthorizationCodeGrant(client).GetToken(ctx, "abc",
			oauth2client.AuthorizationCodeTokenParameters{})
		require.NoError(t, err)
		require.NotContains(t, captured.form, "redirect_uri")
	})

	t.Run("sends PKCE verifier", func(t *testing.T) {
		srv, captured := newTokenServer(t, http.StatusOK, `{}`)
		client, err := oauth2client.New("client-1", oauth2client.WithTokenEndpoint(srv.URL))
		require.NoError(t, err)

		_, err = oauth2client.NewAuthorizationCodeGrant(client).GetToken(ctx, "abc",
			oauth2client.AuthorizationCodeTokenParameters{
				CodeVerifier: oauth2client.String("dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"),
			})
		require.NoError(t, err)
		require.Equal(t, "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk", captured.form.Get("code_verifier"))
	})
}

func TestImplicitGrant_AuthorizationURL(t *testing.T) {
	client, err := oauth2client.New("spa-client",
		oauth2client.WithAuthorizationEndpoint("https://idp.example.com/authorize"))
	require.NoError(t, err)

	rawURL, err := oauth2client.NewImplicitGrant(client).AuthorizationURL(oauth2client.AuthorizationParameters{
		RedirectURI: oauth2client.String("https://spa.example.com/callback"),
		State:       oauth2client.String("xyz"),
	})
	require.NoError(t, err)

	_, query := splitURL(t, rawURL)
	require.Equal(t, "token", query.Get("response_type"))
	require.Equal(t, "spa-client", query.Get("client_id"))
	require.Equal(t, "https://spa.example.com/callback", query.Get("redirect_uri"))
	require.Equal(t, "xyz", query.Get("state"))
}

func TestResourceOwnerPasswordCredentialsGrant_GetToken(t *testing.T) {
	srv, captured := newTokenServer(t, http.StatusOK, `{"access_token":"tok-1"}`)
	client, err := oauth2client.New("client-1", oauth2client.WithTokenEndpoint(srv.URL))
	require.NoError(t, err)

	_, err = oauth2client.NewResourceOwnerPasswordCredentialsGrant(client).GetToken(context.Background(),
		"user@example.com", "password123",
		oauth2client.PasswordTokenParameters{Scope: oauth2client.Scopes("openid")})
	require.NoError(t, err)

	require.Equal(t, "password", captured.form.Get("grant_type"))
	require.Equal(t, "user@example.com", captured.form.Get("username"))
	require.Equal(t, "password123", captured.form.Get("password"))
	require.Equal(t, "openid", captured.form.Get("scope"))
}
