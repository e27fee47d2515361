package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type tokenKey struct{}

// WithToken attaches the bearer token every call made with ctx will send.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey{}).(string)
	return t
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client is the single entry point to the REST API. It holds no per-user state.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", cfg.BaseURL)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{base: base, http: hc, logger: cfg.Logger}, nil
}

// Request describes one API call. Fallback is the resource-specific message used
// when the server does not supply one.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Body     any
	Fallback string
}

// Do performs req and decodes a 2xx JSON body into out (when out is non-nil).
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	resp, err := c.send(ctx, req, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(err, req.Fallback)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, body, req.Fallback)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindUnknown, Status: resp.StatusCode, Message: req.Fallback, Err: err}
	}
	return nil
}

// Blob is a downloaded binary payload (report exports).
type Blob struct {
	Body        []byte
	ContentType string
	Filename    string
}

func (c *Client) Download(ctx context.Context, req Request) (*Blob, error) {
	resp, err := c.send(ctx, req, "*/*")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err, req.Fallback)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, body, req.Fallback)
	}
	blob := &Blob{Body: body, ContentType: resp.Header.Get("Content-Type")}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			blob.Filename = params["filename"]
		}
	}
	return blob, nil
}

func (c *Client) send(ctx context.Context, req Request, accept string) (*http.Response, error) {
	target := c.base.JoinPath(req.Path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		buf, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: req.Fallback, Err: err}
		}
		body = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, newNetworkError(err, req.Fallback)
	}
	httpReq.Header.Set("Accept", accept)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn().Err(err).Str("request_id", requestID).
			Str("method", req.Method).Str("path", req.Path).Msg("api call failed")
		return nil, newNetworkError(err, req.Fallback)
	}
	c.logger.Debug().Str("request_id", requestID).Str("method", req.Method).
		Str("path", req.Path).Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).Msg("api call")
	return resp, nil
}
