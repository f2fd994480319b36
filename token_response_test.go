package oauth2client_test

import (
	"encoding/json"
	"testing"

	oauth2client "github.com/jrsteele09/go-oauth2-client"
	"github.com/stretchr/testify/require"
)

func decodeTokenResponse(t *testing.T, raw string) oauth2client.TokenResponse {
	t.Helper()
	var resp oauth2client.TokenResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	return resp
}

func TestTokenResponse(t *testing.T) {
	t.Run("success fields", func(t *testing.T) {
		resp := decodeTokenResponse(t, `{
			"access_token": "tok-1",
			"token_type": "Bearer",
			"expires_in": 900,
			"refresh_token": "rt-1",
			"id_token": "id-1",
			"scope": "openid profile"
		}`)

		require.False(t, resp.IsError())
		require.Equal(t, "tok-1", resp.AccessToken())
		require.Equal(t, "Bearer", resp.TokenType())
		require.Equal(t, 900, resp.ExpiresIn())
		require.Equal(t, "rt-1", resp.RefreshToken())
		require.Equal(t, "id-1", resp.IDToken())
		require.Equal(t, "openid profile", resp.Scope())
	})

	t.Run("error fields", func(t *testing.T) {
		resp := decodeTokenResponse(t, `{"error":"invalid_grant","error_description":"code expired"}`)

		require.True(t, resp.IsError())
		require.Equal(t, "invalid_grant", resp.ErrorCode())
		require.Equal(t, "code expired", resp.ErrorDescription())
		require.Empty(t, resp.AccessToken())
	})

	t.Run("absent fields are zero values", func(t *testing.T) {
		resp := decodeTokenResponse(t, `{}`)

		require.False(t, resp.IsError())
		require.Empty(t, resp.AccessToken())
		require.Zero(t, resp.ExpiresIn())
	})

	t.Run("provider extensions are preserved", func(t *testing.T) {
		resp := decodeTokenResponse(t, `{"access_token":"tok-1","ext_expires_in":3600,"foci":"1"}`)

		require.Equal(t, float64(3600), resp["ext_expires_in"])
		require.Equal(t, "1", resp["foci"])
	})
}
