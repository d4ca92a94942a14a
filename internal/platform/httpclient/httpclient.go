package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 4 << 20
)

// ErrNoResponse: el request salió pero no hubo respuesta (timeout, conexión rechazada, etc).
var ErrNoResponse = errors.New("no response received")

// StatusError representa una respuesta no-2xx del upstream.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// RequestError: no se pudo construir el request (URL inválida, body no serializable...).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return "build request: " + e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

// Client envuelve *http.Client con helpers comunes para adapters.
type Client struct {
	HTTP    *http.Client
	BaseURL string        // opcional; permite paths relativos en DoJSON
	Limiter *rate.Limiter // opcional; se espera un token antes de cada request
}

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RPS       float64 // 0 => sin limiter
	Burst     int
	Transport http.RoundTripper // tests
}

func New(opts Options) (*Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: opts.Transport,
		},
	}

	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("invalid base url: %w", err)
		}
		c.BaseURL = strings.TrimRight(base, "/")
	}

	if opts.RPS > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		c.Limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}

	return c, nil
}

// DoJSON hace un request JSON y decodifica la respuesta en out (si no es nil).
// Errores posibles:
//   - *RequestError si el request no se pudo armar
//   - ErrNoResponse (wrappeado con la causa) si no hubo respuesta
//   - *StatusError si la respuesta no es 2xx
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	query url.Values,
	headers map[string]string,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return &RequestError{Err: errors.New("nil client")}
	}

	req, err := c.newRequest(ctx, method, pathOrURL, query, headers, in)
	if err != nil {
		return &RequestError{Err: err}
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limit wait: %w", ErrNoResponse, err)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrNoResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, pathOrURL string,
	query url.Values,
	headers map[string]string,
	in any,
) (*http.Request, error) {
	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}
	return req, nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if c.BaseURL == "" {
		return "", errors.New("relative path requires BaseURL")
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
