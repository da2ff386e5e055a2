// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package mmclient is a minimal Mattermost Web API (v4) client, implementing
// only the calls that the retrieval engine needs: channel listings and
// channel history pages.  It authenticates with a static bearer token and
// transparently handles rate limiting and transient server errors; a
// request that keeps failing surfaces its last error to the caller.
package mmclient

// In this file: the HTTP client and the API calls.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/rusq/mmdump/internal/network"
)

// maxBodySize caps the response body read, to avoid unbounded allocation on
// a misbehaving server.
const maxBodySize = 50 << 20

// Client is the Mattermost Web API client.  Zero value is not usable, must
// be initialised with New.
type Client struct {
	cl      *http.Client
	base    *url.URL
	token   string
	lim     *rate.Limiter
	retries int
}

// APIError is the error payload of a failed API call, as documented by
// Mattermost.  StatusCode is populated from the HTTP response even when the
// body did not decode.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ID         string `json:"id"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: %s (id=%s, status=%d)", e.Message, e.ID, e.StatusCode)
}

// Option is the signature of the option-setting function.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithLimits applies the request rate and retry limits.
func WithLimits(l network.Limits) Option {
	return func(c *Client) {
		if l.Validate() == nil {
			c.lim = network.NewLimiter(l.PerMinute, l.Burst, l.Boost)
			c.retries = l.Retries
		}
	}
}

// New creates a client for the Mattermost instance at baseURL,
// authenticating with the given personal access or bot token.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("no token provided")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}
	c := &Client{
		cl:      &http.Client{Timeout: 60 * time.Second},
		base:    base,
		token:   token,
		lim:     network.NewLimiter(network.DefLimits.PerMinute, network.DefLimits.Burst, network.DefLimits.Boost),
		retries: network.DefLimits.Retries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetPublicChannels returns one page of public channels of the team.
func (c *Client) GetPublicChannels(ctx context.Context, teamID string, page, perPage int) (*ChannelList, error) {
	if teamID == "" {
		return nil, errors.New("team ID is empty")
	}
	var cl ChannelList
	if err := c.get(ctx, "teams/"+teamID+"/channels", pageValues(page, perPage), &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// GetMyChannels returns one page of channels visible to the authenticated
// user across all teams, including private and direct channels.
func (c *Client) GetMyChannels(ctx context.Context, page, perPage int) (*ChannelList, error) {
	var cl ChannelList
	if err := c.get(ctx, "users/me/channels", pageValues(page, perPage), &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// GetPostsForChannel returns one page of posts for the channel.
func (c *Client) GetPostsForChannel(ctx context.Context, channelID string, page, perPage int, opt PostOptions) (*PostList, error) {
	if channelID == "" {
		return nil, errors.New("channel ID is empty")
	}
	q := pageValues(page, perPage)
	if opt.Since > 0 {
		q.Set("since", strconv.FormatInt(opt.Since, 10))
	}
	if opt.BeforeID != "" {
		q.Set("before", opt.BeforeID)
	}
	if opt.AfterID != "" {
		q.Set("after", opt.AfterID)
	}
	var pl PostList
	if err := c.get(ctx, "channels/"+channelID+"/posts", q, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

func pageValues(page, perPage int) url.Values {
	q := make(url.Values, 2)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}

// get issues a GET request against the API path p and decodes the response
// into v.  It goes through the rate limiter, and retries on 429 and
// transient server errors.
func (c *Client) get(ctx context.Context, p string, q url.Values, v any) error {
	u := c.base.JoinPath("api", "v4", p)
	u.RawQuery = q.Encode()

	return network.WithRetry(ctx, c.lim, c.retries, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.cl.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return fmt.Errorf("reading response of %s: %w", p, err)
		}
		if resp.StatusCode != http.StatusOK {
			return statusErr(resp, body)
		}
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("decoding response of %s: %w", p, err)
		}
		return nil
	})
}

// statusErr converts a non-200 response into an error that the retry layer
// understands: 429 and recoverable server errors are retried, anything else
// is terminal and carries the server's error payload.
func statusErr(resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &network.RateLimitedError{RetryAfter: retryAfter(resp)}
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusRequestTimeout:
		return network.StatusCodeError{Code: resp.StatusCode, Status: resp.Status}
	}
	ae := APIError{StatusCode: resp.StatusCode}
	_ = json.Unmarshal(body, &ae) // best effort, the payload may not be JSON
	ae.StatusCode = resp.StatusCode
	return &ae
}

// retryAfter returns the delay advertised in the Retry-After header, or one
// second if the header is absent or unparseable.
func retryAfter(resp *http.Response) time.Duration {
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 1 {
		return time.Second
	}
	return time.Duration(secs) * time.Second
}
