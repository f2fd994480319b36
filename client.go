package oauth2client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Doer executes a single HTTP request. *http.Client satisfies it. Inject
// your own implementation to control timeouts, proxies and TLS; failures
// below the HTTP layer (DNS, connection refused, timeout) propagate to the
// caller unreinterpreted.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the low-level RFC 6749 client shared by every grant type. It
// holds the client identity and endpoint configuration, is immutable after
// construction and carries no per-request state, so one instance is safe
// for concurrent use across many flows.
//
// The grant types (AuthorizationCodeGrant, ImplicitGrant,
// ResourceOwnerPasswordCredentialsGrant, ClientCredentialsGrant) are
// friendlier reminders of which parameters each scenario needs.
// More on client types at https://tools.ietf.org/html/rfc6749#section-2.1
type Client struct {
	clientID              string
	clientSecret          string
	defaultBody           map[string]string
	authorizationEndpoint string
	tokenEndpoint         string
	httpClient            Doer
	logger                zerolog.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithClientSecret marks the client as confidential. When non-empty, token
// requests authenticate with HTTP Basic auth per RFC 6749 section 2.3.1.
// Security: never log or expose this value.
func WithClientSecret(secret string) Option {
	return func(c *Client) {
		c.clientSecret = secret
	}
}

// WithDefaultBody merges body into every token request. It usually carries
// confidential-client authentication parameters, such as client_secret or a
// client assertion (see ClientSecretJWT and PrivateKeyJWT), when HTTP Basic
// auth is not used. Explicit per-call parameters win on collision.
func WithDefaultBody(body map[string]string) Option {
	return func(c *Client) {
		for k, v := range body {
			c.defaultBody[k] = v
		}
	}
}

// WithAuthorizationEndpoint sets the endpoint used to build authorization
// URLs. Required for the authorization code and implicit flows.
func WithAuthorizationEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.authorizationEndpoint = endpoint
	}
}

// WithTokenEndpoint sets the endpoint token requests are POSTed to.
func WithTokenEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.tokenEndpoint = endpoint
	}
}

// WithHTTPClient sets the transport used for token requests. Defaults to
// http.DefaultClient.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithLogger sets the logger. Defaults to a no-op logger. Token requests
// are logged at debug level; request bodies and credentials never are.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for the given client_id. Endpoints are optional at
// construction time; the operations that need them fail with a
// ConfigurationError when they are missing.
func New(clientID string, options ...Option) (*Client, error) {
	if clientID == "" {
		return nil, errors.New("[New] clientID is required")
	}

	c := &Client{
		clientID:    clientID,
		defaultBody: make(map[string]string),
		httpClient:  http.DefaultClient,
		logger:      zerolog.Nop(),
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// authorizationURL serializes an authorization request into a URL.
// {client_id, response_type} are merged with params; unset optional fields
// are omitted, never sent empty. No network I/O happens here.
func (c *Client) authorizationURL(responseType ResponseType, params AuthorizationParameters) (string, error) {
	if c.authorizationEndpoint == "" {
		return "", &ConfigurationError{Missing: "authorization endpoint"}
	}

	query := url.Values{}
	query.Set("client_id", c.clientID)
	query.Set("response_type", string(responseType))
	setOptional(query, "redirect_uri", params.RedirectURI)
	setOptional(query, "scope", params.Scope)
	setOptional(query, "state", params.State)
	setOptional(query, "code_challenge", params.CodeChallenge)
	if params.CodeChallengeMethod != "" {
		query.Set("code_challenge_method", string(params.CodeChallengeMethod))
	}
	for k, v := range params.Extra {
		query.Set(k, v)
	}

	return appendQuery(c.authorizationEndpoint, query), nil
}

// requestToken POSTs a token request and returns the decoded JSON body.
// The request body is {client_id, grant_type} merged with the configured
// default body and then the grant-specific parameters; callers encode
// "keep the default" by leaving optional fields unset, so a configured
// default is never clobbered by an absent value.
func (c *Client) requestToken(ctx context.Context, grantType GrantType, query url.Values, body map[string]string) (TokenResponse, error) {
	if c.tokenEndpoint == "" {
		return nil, &ConfigurationError{Missing: "token endpoint"}
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("grant_type", string(grantType))
	for k, v := range c.defaultBody {
		form.Set(k, v)
	}
	for k, v := range body {
		form.Set(k, v)
	}

	endpoint := c.tokenEndpoint
	if len(query) > 0 {
		endpoint = appendQuery(endpoint, query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "[Client.requestToken] building request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// RFC 6749 section 2.3.1: clients in possession of a client password
	// MAY use HTTP Basic authentication. Sending client_id/client_secret in
	// the body is the NOT RECOMMENDED alternative, left to defaultBody.
	if c.clientID != "" && c.clientSecret != "" {
		req.SetBasicAuth(url.QueryEscape(c.clientID), url.QueryEscape(c.clientSecret))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.requestToken] POST %s", c.tokenEndpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("grant_type", string(grantType)).
		Str("endpoint", c.tokenEndpoint).
		Int("status", resp.StatusCode).
		Msg("token request")

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &ServerError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.requestToken] reading response")
	}

	// RFC 6749 section 5.2: even an error response is a valid JSON
	// structure, so 4xx bodies are returned as data for the caller to
	// inspect, not raised as errors.
	var tokenResponse TokenResponse
	if err := json.Unmarshal(raw, &tokenResponse); err != nil {
		return nil, errors.Wrap(err, "[Client.requestToken] decoding response")
	}
	return tokenResponse, nil
}

// GetTokenByRefreshToken exchanges a refresh token for a new token response
// (RFC 6749 section 6). Works with any Client regardless of the grant type
// that obtained the refresh token.
func (c *Client) GetTokenByRefreshToken(ctx context.Context, refreshToken string, params RefreshTokenParameters) (TokenResponse, error) {
	body := map[string]string{"refresh_token": refreshToken}
	putOptional(body, "scope", params.Scope)
	mergeExtra(body, params.Extra)
	return c.requestToken(ctx, RefreshTokenGrantType, params.Query, body)
}

// appendQuery appends an encoded query to endpoint, using "?" unless the
// endpoint already carries a query component.
func appendQuery(endpoint string, query url.Values) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + query.Encode()
}
