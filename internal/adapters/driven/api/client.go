package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Ensure Client implements every remote port.
var (
	_ driven.AuthAPI     = (*Client)(nil)
	_ driven.CartAPI     = (*Client)(nil)
	_ driven.WishlistAPI = (*Client)(nil)
	_ driven.CatalogAPI  = (*Client)(nil)
	_ driven.OrderAPI    = (*Client)(nil)
	_ driven.AddressAPI  = (*Client)(nil)
	_ driven.PaymentAPI  = (*Client)(nil)
	_ driven.UserAPI     = (*Client)(nil)
)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// maxResponseBody bounds how much of a response is read.
	maxResponseBody = 10 << 20
)

// Config holds configuration for the REST client.
type Config struct {
	// BaseURL is the API root (required).
	BaseURL string

	// Timeout bounds every request (default: 30s).
	Timeout time.Duration

	// RatePerSecond throttles requests. Zero disables throttling.
	RatePerSecond float64

	// Tokens supplies the bearer credential. Nil sends every request anonymously.
	Tokens oauth2.TokenSource

	// Transport is the underlying round tripper (default: http.DefaultTransport).
	Transport http.RoundTripper
}

// Client talks to the storefront REST API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *RateLimiter
}

// NewClient creates a REST client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", cfg.BaseURL)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &transport{base: cfg.Transport, tokens: cfg.Tokens},
		},
		limiter: NewRateLimiter(cfg.RatePerSecond),
	}, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint builds an absolute URL below the base URL from path segments.
func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// doJSON sends body as JSON and decodes a JSON response into out. Either may be nil.
func (c *Client) doJSON(ctx context.Context, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// filePart is an optional file attached to a multipart request.
type filePart struct {
	field    string
	filename string
	data     []byte
}

// doMultipart sends jsonField as an application/json part plus an optional file.
func (c *Client) doMultipart(
	ctx context.Context,
	method, target string,
	jsonField string,
	value any,
	file *filePart,
	out any,
) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", jsonField, err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, jsonField))
	header.Set("Content-Type", "application/json")
	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create %s part: %w", jsonField, err)
	}
	if _, err := part.Write(payload); err != nil {
		return fmt.Errorf("write %s part: %w", jsonField, err)
	}

	if file != nil {
		fw, err := mw.CreateFormFile(file.field, file.filename)
		if err != nil {
			return fmt.Errorf("create %s part: %w", file.field, err)
		}
		if _, err := fw.Write(file.data); err != nil {
			return fmt.Errorf("write %s part: %w", file.field, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	logger.Debug("%s %s", req.Method, req.URL.Path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	logger.Debug("%s %s -> %d (%d bytes)", req.Method, req.URL.Path, resp.StatusCode, len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusTooManyRequests {
			c.limiter.RecordRateLimited(resp.Header.Get("Retry-After"))
		}
		return &Error{
			Method:  req.Method,
			Path:    req.URL.Path,
			Status:  resp.StatusCode,
			Message: errorMessage(body),
		}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
