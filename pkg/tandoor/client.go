// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tandoor

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mchmarny/recipe-printer/pkg/defaults"
	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
	"github.com/mchmarny/recipe-printer/pkg/recipe"
)

const (
	DefaultUserAgent = "recipe-printer/1.0"

	// HeaderRequestID carries a per-request id for correlating server logs.
	HeaderRequestID = "X-Request-Id"

	// maxResponseBytes bounds the size of a decoded response body.
	maxResponseBytes = 10 << 20
)

// Option configures a Client.
type Option func(*Client)

// Client retrieves recipes from a Tandoor instance.
type Client struct {
	BaseURL   *url.URL
	Token     string
	UserAgent string
	Timeout   time.Duration
	Limiter   *rate.Limiter
	Client    *http.Client
}

// WithToken sets the API token sent as a bearer credential.
func WithToken(token string) Option {
	return func(c *Client) {
		c.Token = token
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.UserAgent = userAgent
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.Timeout = timeout
	}
}

// WithRateLimit paces outbound requests to rps with the given burst.
// A non-positive rps disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.Limiter = nil
			return
		}
		c.Limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.Client = client
	}
}

// NewClient returns a client for the instance at baseURL.
func NewClient(baseURL string, options ...Option) (*Client, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		BaseURL:   u,
		UserAgent: DefaultUserAgent,
		Timeout:   defaults.HTTPClientTimeout,
		Limiter:   rate.NewLimiter(rate.Limit(defaults.APIRequestsPerSecond), defaults.APIRequestBurst),
	}

	for _, opt := range options {
		opt(c)
	}

	if c.Client == nil {
		c.Client = &http.Client{
			Timeout:   c.Timeout,
			Transport: newTransport(),
		}
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}

	return c, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "instance url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "invalid instance url", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			"instance url must use http or https", map[string]any{"url": raw})
	}
	if u.Host == "" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			"instance url has no host", map[string]any{"url": raw})
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func newTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,

		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,

		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// Instance returns the base URL of the instance without a trailing slash.
func (c *Client) Instance() string {
	return c.BaseURL.String()
}

func (c *Client) endpoint(path string) string {
	u := *c.BaseURL
	u.Path = c.BaseURL.Path + path
	return u.String()
}

// GetRecipe fetches the recipe with the given id.
func (c *Client) GetRecipe(ctx context.Context, id int) (*recipe.Recipe, error) {
	if id <= 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			"recipe id must be a positive integer", map[string]any{"id": id})
	}
	if c.Token == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "api token is required")
	}

	start := time.Now()
	r, err := c.getRecipe(ctx, id)
	observe(opGetRecipe, start, err)
	if err != nil {
		return nil, err
	}

	slog.Debug("recipe retrieved",
		"id", r.ID,
		"name", r.Name,
		"steps", len(r.Steps),
		"duration", time.Since(start))
	return r, nil
}

func (c *Client) getRecipe(ctx context.Context, id int) (*recipe.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint("/api/recipe/"+strconv.Itoa(id)+"/"), nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := statusError(resp, map[string]any{"id": id}); err != nil {
		return nil, err
	}

	var r recipe.Recipe
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&r); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeMalformedData,
			"failed to decode recipe", err, map[string]any{"id": id})
	}
	return &r, nil
}

type tokenResponse struct {
	Token string `json:"token"`
}

// SignIn exchanges a username and password for an API token.
func (c *Client) SignIn(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidConfig, "username and password are required")
	}

	start := time.Now()
	token, err := c.signIn(ctx, username, password)
	observe(opSignIn, start, err)
	if err != nil {
		return "", err
	}

	c.Token = token
	slog.Debug("signed in", "username", username)
	return token, nil
}

func (c *Client) signIn(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("/api-token-auth/"), strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// invalid credentials are reported as a bad request
	if resp.StatusCode == http.StatusBadRequest {
		return "", apperrors.NewWithContext(apperrors.ErrCodeUnauthorized,
			"sign-in rejected", map[string]any{"username": username})
	}
	if err := statusError(resp, map[string]any{"username": username}); err != nil {
		return "", err
	}

	var tr tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&tr); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeMalformedData, "failed to decode token response", err)
	}
	if tr.Token == "" {
		return "", apperrors.New(apperrors.ErrCodeMalformedData, "token response has no token")
	}
	return tr.Token, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(req.Context()); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "request cancelled", err)
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set(HeaderRequestID, uuid.NewString())

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUnavailable, "request failed", err,
			map[string]any{"url": req.URL.Redacted(), "requestID": req.Header.Get(HeaderRequestID)})
	}
	return resp, nil
}

// statusError maps a non-200 response to a structured error.
func statusError(resp *http.Response, details map[string]any) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	if details == nil {
		details = map[string]any{}
	}
	details["status"] = resp.StatusCode
	msg := fmt.Sprintf("unexpected response: %s", resp.Status)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.NewWithContext(apperrors.ErrCodeUnauthorized, msg, details)
	case http.StatusNotFound:
		return apperrors.NewWithContext(apperrors.ErrCodeNotFound, msg, details)
	default:
		return apperrors.NewWithContext(apperrors.ErrCodeUnavailable, msg, details)
	}
}
