package api

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

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// maxBodyBytes bounds how much of a backend response is read.
const maxBodyBytes = 8 << 20

// Client is the single request helper for the inventory backend.
type Client struct {
	base      *url.URL
	transport http.RoundTripper
	timeout   time.Duration
	log       *zap.Logger
}

// New builds a Client for baseURL. A zero timeout leaves deadlines to the
// caller's context.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend url must be http or https, got %q", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("backend url has no host: %q", baseURL)
	}
	return &Client{
		base:      u,
		transport: http.DefaultTransport,
		timeout:   timeout,
		log:       logger,
	}, nil
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.base.String() }

// httpClient returns a client that attaches the bearer credential when
// token is non-empty.
func (c *Client) httpClient(token string) *http.Client {
	rt := c.transport
	if token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.transport,
		}
	}
	return &http.Client{Transport: rt, Timeout: c.timeout}
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Do issues one request. body, when non-nil, is encoded as JSON.
func (c *Client) Do(ctx context.Context, method, path string, q url.Values, body any, token string) Result {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return Result{Kind: KindTransport, Err: fmt.Errorf("encode request: %w", err)}
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, q), rdr)
	if err != nil {
		return Result{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient(token).Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return Result{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Result{Kind: KindTransport, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	res := Result{
		Kind:       KindOK,
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Message:    messageOf(raw),
		Body:       raw,
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Kind = KindApplication
		c.log.Info("backend returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", res.Message))
	}
	return res
}

// messageOf extracts the "message" field of a JSON object body.
func messageOf(raw []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if len(raw) == 0 || raw[0] != '{' {
		return ""
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	return m.Message
}
