package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/Kamar-Folarin/commit-history-app/internal/auth"
)

// Requester is the surface the page flows use to talk to the remote API
type Requester interface {
	Get(ctx context.Context, path string, params interface{}) (*Response, error)
	Post(ctx context.Context, path string, body interface{}) (*Response, error)
}

// Provider builds a Requester bound to a credential
type Provider interface {
	ForCredential(cred auth.Credential) Requester
}

// Response is a successful (2xx) API response
type Response struct {
	StatusCode int
	Header     http.Header
	Data       []byte
}

// Decode unmarshals the response body into out
func (r *Response) Decode(out interface{}) error {
	if err := json.Unmarshal(r.Data, out); err != nil {
		return &ResponseError{StatusCode: r.StatusCode, Data: r.Data, Message: "failed to decode response", Err: err}
	}
	return nil
}

// Client represents a client for the commit-history API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	credential auth.Credential
	timeout    time.Duration
	logger     *logrus.Logger
}

// ClientOption allows configuring the API client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithCredential attaches the credential as a bearer token on every request
func WithCredential(cred auth.Credential) ClientOption {
	return func(c *Client) {
		c.credential = cred
	}
}

// NewClient creates a new API client rooted at baseURL
func NewClient(baseURL string, logger *logrus.Logger, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	client := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
		timeout:    30 * time.Second,
		logger:     logger,
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	base := client.httpClient
	client.httpClient = &http.Client{
		Transport:     base.Transport,
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
		Timeout:       client.timeout,
	}
	if !client.credential.IsZero() {
		client.httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: client.credential.Token,
				TokenType:   "Bearer",
			}),
			Base: base.Transport,
		}
	}

	return client, nil
}

// Get issues a GET request; params is a struct with `url` tags, or nil
func (c *Client) Get(ctx context.Context, path string, params interface{}) (*Response, error) {
	endpoint := c.resolve(path)
	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query params: %w", err)
		}
		endpoint.RawQuery = values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// Post issues a POST request with a JSON-encoded body
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path).String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) resolve(path string) *url.URL {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimPrefix(path, "/")
	u.RawQuery = ""
	return &u
}

// do performs the request once; callers treat any error as terminal for the attempt
func (c *Client) do(req *http.Request) (*Response, error) {
	logger := c.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("API request failed")
		return nil, NewTransportError("request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ResponseError{StatusCode: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	logger = logger.WithField("status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("API request returned non-2xx status")
		return nil, NewResponseError(resp.StatusCode, data)
	}
	logger.Debug("API request succeeded")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Data:       data,
	}, nil
}

// Factory builds credential-bound clients from a shared configuration
type Factory struct {
	baseURL string
	logger  *logrus.Logger
	opts    []ClientOption
}

// NewFactory validates baseURL once so ForCredential cannot fail
func NewFactory(baseURL string, logger *logrus.Logger, opts ...ClientOption) (*Factory, error) {
	if _, err := NewClient(baseURL, logger, opts...); err != nil {
		return nil, err
	}
	return &Factory{
		baseURL: baseURL,
		logger:  logger,
		opts:    opts,
	}, nil
}

// ForCredential returns a client that presents cred on every request
func (f *Factory) ForCredential(cred auth.Credential) Requester {
	opts := append(append([]ClientOption{}, f.opts...), WithCredential(cred))
	client, _ := NewClient(f.baseURL, f.logger, opts...)
	return client
}
