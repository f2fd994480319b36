package oauth2client

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// JWTBearerAssertionType is the client_assertion_type value for JWT client
// assertions (RFC 7523 section 2.2).
const JWTBearerAssertionType = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"

const defaultAssertionLifetime = 10 * time.Minute

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// ClientSecretJWT builds the body parameters for the client_secret_jwt
// authentication method: a client assertion signed with the client secret
// using HS256. Pass the result to WithDefaultBody and leave the Client's
// secret unset so HTTP Basic auth is not selected:
//
//	body, err := oauth2client.ClientSecretJWT(id, secret, tokenEndpoint, 0)
//	client, err := oauth2client.New(id,
//		oauth2client.WithTokenEndpoint(tokenEndpoint),
//		oauth2client.WithDefaultBody(body),
//	)
//
// A lifetime <= 0 defaults to ten minutes. The assertion is minted once;
// rebuild the body when it expires.
func ClientSecretJWT(clientID, clientSecret, tokenEndpoint string, lifetime time.Duration) (map[string]string, error) {
	if clientSecret == "" {
		return nil, errors.New("[ClientSecretJWT] clientSecret is required")
	}
	return signedAssertionBody(clientID, tokenEndpoint, lifetime, jwtlib.SigningMethodHS256, []byte(clientSecret))
}

// PrivateKeyJWT builds the body parameters for the private_key_jwt
// authentication method. key must match the signing method, for example an
// *rsa.PrivateKey with jwt.SigningMethodRS256 or an *ecdsa.PrivateKey with
// jwt.SigningMethodES256.
func PrivateKeyJWT(clientID string, key any, method jwtlib.SigningMethod, tokenEndpoint string, lifetime time.Duration) (map[string]string, error) {
	if key == nil {
		return nil, errors.New("[PrivateKeyJWT] key is required")
	}
	if method == nil {
		return nil, errors.New("[PrivateKeyJWT] method is required")
	}
	return signedAssertionBody(clientID, tokenEndpoint, lifetime, method, key)
}

func signedAssertionBody(clientID, tokenEndpoint string, lifetime time.Duration, method jwtlib.SigningMethod, key any) (map[string]string, error) {
	if clientID == "" {
		return nil, errors.New("[signedAssertionBody] clientID is required")
	}
	if tokenEndpoint == "" {
		return nil, errors.New("[signedAssertionBody] tokenEndpoint is required")
	}
	if lifetime <= 0 {
		lifetime = defaultAssertionLifetime
	}

	// RFC 7523 section 3: the client is both issuer and subject, the token
	// endpoint is the audience, and jti lets the server reject replays.
	now := NowTimeFunc()
	claims := jwtlib.MapClaims{
		"iss": clientID,
		"sub": clientID,
		"aud": tokenEndpoint,
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(lifetime).Unix(),
	}

	signed, err := jwtlib.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		return nil, errors.Wrap(err, "[signedAssertionBody] signing client assertion")
	}

	return map[string]string{
		"client_assertion_type": JWTBearerAssertionType,
		"client_assertion":      signed,
	}, nil
}
