package oauth2client

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/pkg/errors"
)

// PKCE carries a Proof Key for Code Exchange pair (RFC 7636). Send
// Challenge and Method with the authorization request and Verifier with the
// token request:
//
//	pkce, _ := oauth2client.NewPKCE()
//	url, _ := grant.AuthorizationURL(oauth2client.AuthorizationParameters{
//		CodeChallenge:       oauth2client.String(pkce.Challenge),
//		CodeChallengeMethod: pkce.Method,
//	})
//	tokens, _ := grant.GetToken(ctx, code, oauth2client.AuthorizationCodeTokenParameters{
//		CodeVerifier: oauth2client.String(pkce.Verifier),
//	})
type PKCE struct {
	Verifier  string
	Challenge string
	Method    CodeMethodType
}

const verifierEntropyBytes = 48 // encodes to a 64-character verifier, within RFC 7636's 43..128

// NewPKCE generates a random code verifier and its S256 challenge.
func NewPKCE() (*PKCE, error) {
	raw := make([]byte, verifierEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Wrap(err, "[NewPKCE] rand.Read")
	}
	verifier := base64.RawURLEncoding.EncodeToString(raw)
	return &PKCE{
		Verifier:  verifier,
		Challenge: S256Challenge(verifier),
		Method:    CodeMethodTypeS256,
	}, nil
}

// S256Challenge derives the code challenge for a verifier using the S256
// method: BASE64URL(SHA256(verifier)), unpadded.
func S256Challenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
