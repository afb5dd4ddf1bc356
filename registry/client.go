// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NimbleBrainInc/mpak-sdk/logger"
	"github.com/NimbleBrainInc/mpak-sdk/sdkerr"
	validhttp "github.com/NimbleBrainInc/mpak-sdk/validation/http"
	"github.com/NimbleBrainInc/mpak-sdk/validation/name"
)

// DefaultRegistryURL is the production mpak registry.
const DefaultRegistryURL = "https://registry.nimblebrain.ai"

// DefaultTimeout is the per-request deadline applied when no timeout option is given.
const DefaultTimeout = 30 * time.Second

// Client is an HTTP client for the mpak registry API.
// Configuration is fixed at construction; a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	headers    http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithRegistryURL overrides the registry base URL.
func WithRegistryURL(rawURL string) Option {
	return func(c *Client) {
		c.baseURL = rawURL
	}
}

// WithTimeout overrides the per-request deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom underlying HTTP client.
// Connection pooling is delegated to it; the Client adds only deadlines.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader adds a custom header to every request, e.g. a client identifier.
// Header names and values are validated at construction time.
func WithHeader(headerName, headerValue string) Option {
	return func(c *Client) {
		c.headers.Add(headerName, headerValue)
	}
}

// NewClient creates a registry client with the given options.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultRegistryURL,
		timeout: DefaultTimeout,
		headers: http.Header{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimSuffix(c.baseURL, "/")

	for headerName, values := range c.headers {
		if err := validhttp.ValidateHeaderName(headerName); err != nil {
			return nil, sdkerr.NewValidation("invalid header %q: %s", headerName, err)
		}
		for _, v := range values {
			if err := validhttp.ValidateHeaderValue(v); err != nil {
				return nil, sdkerr.NewValidation("invalid value for header %q: %s", headerName, err)
			}
		}
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	return c, nil
}

// Timeout returns the configured per-request deadline.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// fetch issues a GET against the registry and maps every failure into the SDK
// error taxonomy. The resource string identifies what was requested for
// Not-Found reporting.
func (c *Client) fetch(ctx context.Context, path string, query url.Values, resource string) (body []byte, contentType string, err error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, "", sdkerr.NewNetwork("building request", err)
	}
	for headerName, values := range c.headers {
		for _, v := range values {
			req.Header.Add(headerName, v)
		}
	}

	logger.Debugw("registry request", "url", requestURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", c.transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", c.transportError(err)
	}

	logger.Debugw("registry response", "url", requestURL, "status", resp.StatusCode, "bytes", len(body))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, "", &sdkerr.NotFoundError{Resource: resource}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, "", sdkerr.NewNetworkStatus(resp.StatusCode)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// get is fetch without the content type, for JSON endpoints.
func (c *Client) get(ctx context.Context, path string, query url.Values, resource string) ([]byte, error) {
	body, _, err := c.fetch(ctx, path, query, resource)
	return body, err
}

// transportError normalizes transport failures, distinguishing deadline
// expiry so the error message names the configured duration.
func (c *Client) transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return sdkerr.NewNetwork(fmt.Sprintf("request timed out after %dms", c.timeout.Milliseconds()), err)
	}
	return sdkerr.NewNetwork("request failed", err)
}

// decodeJSON unmarshals a registry response body, normalizing decode failures
// into the network taxonomy (a malformed body is a server fault, not a caller
// fault).
func decodeJSON(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return sdkerr.NewNetwork("decoding registry response", err)
	}
	return nil
}

// requireScopedName enforces the local scoped-name precondition shared by all
// named-resource operations. It never issues a request.
func requireScopedName(artifactName string) error {
	if err := name.ValidateScoped(artifactName); err != nil {
		return sdkerr.NewValidation("%s", err)
	}
	return nil
}
