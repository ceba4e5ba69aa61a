package qbittorrent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const apiPrefix = "/api/v2"

// Client is the capability handle for one authenticated WebUI session.
// The session cookie is obtained once by Connect and never mutated
// afterwards, so a Client may be used from multiple goroutines.
type Client struct {
	origin     string
	username   string
	sid        string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// Connect logs in to the qBittorrent WebUI at host and returns a
// Client bound to the resulting session.
//
// The host may be a bare hostname, host:port, or a full URL. Without
// an explicit scheme, http is assumed; without an explicit port, 443
// is used for https and 80 for http.
func Connect(ctx context.Context, host, username, password string, opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	origin, err := resolveOrigin(host)
	if err != nil {
		return nil, &AuthError{Username: username, Err: err}
	}

	c := &Client{
		origin:     origin,
		username:   username,
		httpClient: options.buildHTTPClient(),
		userAgent:  options.userAgent,
		logger:     options.logger,
	}

	if err := c.login(ctx, username, password); err != nil {
		return nil, &AuthError{Username: username, Err: err}
	}

	c.logger.Debug().Str("origin", origin).Str("username", username).Msg("connected to qBittorrent")

	return c, nil
}

// resolveOrigin normalizes a host identifier to scheme://host[:port],
// omitting the port suffix when it is the scheme's default.
func resolveOrigin(host string) (string, error) {
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return "", fmt.Errorf("invalid host %q: %w", host, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid host %q: unsupported scheme %q", host, u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("invalid host %q: missing hostname", host)
	}

	defaultPort := "80"
	if u.Scheme == "https" {
		defaultPort = "443"
	}

	origin := u.Scheme + "://" + u.Hostname()
	if port := u.Port(); port != "" && port != defaultPort {
		origin += ":" + port
	}

	return origin, nil
}

// login performs the auth/login handshake and captures the first
// cookie of the response as the session token.
func (c *Client) login(ctx context.Context, username, password string) error {
	params := Params{}.Set("username", username).Set("password", password)

	resp, err := c.do(ctx, "/auth/login", params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: "/auth/login", StatusCode: resp.StatusCode}
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return ErrNoSessionCookie
	}
	c.sid = cookies[0].Name + "=" + cookies[0].Value

	return nil
}

// Logout invalidates the session on the server. The Client must not be
// used afterwards.
func (c *Client) Logout(ctx context.Context) error {
	return c.postNoContent(ctx, "/auth/logout", Params{})
}

// Username returns the username the session was established with.
func (c *Client) Username() string {
	return c.username
}

// Origin returns the resolved scheme://host[:port] the client talks to.
func (c *Client) Origin() string {
	return c.origin
}

// do encodes params and issues a single POST to the given endpoint.
// Transport errors are returned unchanged; the caller owns the
// response body.
func (c *Client) do(ctx context.Context, endpoint string, params Params) (*http.Response, error) {
	body, err := params.Encode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+apiPrefix+endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", endpoint, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", c.origin)
	req.Header.Set("Origin", c.origin)
	if c.sid != "" {
		req.Header.Set("Cookie", c.sid)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Trace().Str("endpoint", endpoint).Int("body_len", len(body)).Msg("qBittorrent API request")

	return c.httpClient.Do(req)
}

// postBody performs one call and returns the raw response body on
// HTTP 200. Any other status yields a StatusError.
func (c *Client) postBody(ctx context.Context, endpoint string, params Params) ([]byte, error) {
	resp, err := c.do(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response body: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	return body, nil
}

// postNoContent performs one call whose declared return is empty.
func (c *Client) postNoContent(ctx context.Context, endpoint string, params Params) error {
	_, err := c.postBody(ctx, endpoint, params)
	return err
}

// postText performs one call whose declared return is plain text.
func (c *Client) postText(ctx context.Context, endpoint string, params Params) (string, error) {
	body, err := c.postBody(ctx, endpoint, params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// postJSON performs one call and decodes the response body as JSON
// into out. A malformed body on a 200 response is a decode error, not
// retried.
func (c *Client) postJSON(ctx context.Context, endpoint string, params Params, out any) error {
	body, err := c.postBody(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", endpoint, err)
	}
	return nil
}
