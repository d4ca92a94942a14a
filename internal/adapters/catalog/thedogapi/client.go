package thedogapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dogs-catalog/internal/platform/httpclient"
	"dogs-catalog/internal/platform/logger"
	"dogs-catalog/internal/ports/catalog"
)

const (
	DefaultBaseURL = "https://api.thedogapi.com/v1"

	breedsPath   = "/breeds"
	apiKeyHeader = "x-api-key"
)

// Observer recibe el resultado de cada llamada (métricas). Opcional.
type Observer interface {
	ObserveCatalogRequest(outcome string, d time.Duration)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	RPS     float64

	Transport http.RoundTripper
	Observer  Observer
	Logger    logger.Logger
}

// Client implementa catalog.Catalog contra The Dog API.
type Client struct {
	http     *httpclient.Client
	apiKey   string
	observer Observer
	log      logger.Logger
	now      func() time.Time
}

var _ catalog.Catalog = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   cfg.Timeout,
		RPS:       cfg.RPS,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("thedogapi: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		http:     hc,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		observer: cfg.Observer,
		log:      log.With(logger.Fields{"component": "thedogapi"}),
		now:      time.Now,
	}, nil
}

// ListBreeds trae el listado completo, en el orden del proveedor. Sin reintentos.
func (c *Client) ListBreeds(ctx context.Context) ([]catalog.Breed, error) {
	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{apiKeyHeader: c.apiKey}
	}

	start := c.now()
	var out []catalog.Breed
	err := c.http.DoJSON(ctx, http.MethodGet, breedsPath, nil, headers, nil, &out)
	elapsed := c.now().Sub(start)

	outcome := classify(err)
	if c.observer != nil {
		c.observer.ObserveCatalogRequest(outcome, elapsed)
	}

	if err != nil {
		fields := logger.Err(err)
		fields["outcome"] = outcome
		var se *httpclient.StatusError
		if errors.As(err, &se) && se.Body != "" {
			fields["body"] = truncate(se.Body, 256)
		}
		c.log.Error("breed catalog request failed", fields)
		return nil, fmt.Errorf("%w: %w", catalog.ErrUpstream, err)
	}

	c.log.Debug("breed catalog fetched", logger.Fields{"count": len(out), "elapsed_ms": elapsed.Milliseconds()})
	return out, nil
}

func classify(err error) string {
	var se *httpclient.StatusError
	var re *httpclient.RequestError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &se):
		return "status"
	case errors.Is(err, httpclient.ErrNoResponse):
		return "no_response"
	case errors.As(err, &re):
		return "request"
	default:
		return "decode"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
