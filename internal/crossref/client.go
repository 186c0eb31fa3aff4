// Package crossref provides a thin client for the CrossRef REST API.
//
// The client is a stateless pass-through: parameters are forwarded to the
// provider as given, responses are returned verbatim as decoded JSON, and
// provider errors propagate unchanged to the caller. The only configuration
// it carries is the optional polite-pool contact email set at construction.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/olgasafonova/crossref-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/crossref-mcp-server/internal/errors"
	"github.com/olgasafonova/crossref-mcp-server/metrics"
)

// DefaultLimit is the number of rows requested when the caller leaves
// limit unset. There is no upper bound: explicit values pass through.
const DefaultLimit = 20

// DefaultUserAgent identifies this client to the provider
const DefaultUserAgent = "CrossrefMCPServer/1.0 (https://github.com/olgasafonova/crossref-mcp-server)"

// Client is a CrossRef REST API client. Safe for concurrent use; all
// methods are single round-trip lookups with no retries or caching.
type Client struct {
	*base.Client
	baseURL   string
	mailto    string
	userAgent string
}

// ClientOption configures the Client (re-export base.ClientOption for compatibility)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// NewClient creates a new CrossRef API client
func NewClient(opts ...ClientOption) *Client {
	return &Client{
		Client:    base.NewClient(opts...),
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
}

// NewClientFromConfig creates a client from environment-derived settings
func NewClientFromConfig(cfg *Config, opts ...ClientOption) *Client {
	combined := append([]ClientOption{WithHTTPClient(base.NewHTTPClient(cfg.Timeout))}, opts...)
	c := NewClient(combined...)
	c.baseURL = cfg.BaseURL
	c.mailto = cfg.Mailto
	c.userAgent = cfg.UserAgent
	return c
}

// WithBaseURL returns a Client with a custom base URL (for testing)
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

// WithMailto returns a Client identified to the provider's polite pool.
// Construction-time only; methods never mutate the client.
func (c *Client) WithMailto(mailto string) *Client {
	c.mailto = mailto
	return c
}

// WithUserAgent returns a Client sending a custom User-Agent header
func (c *Client) WithUserAgent(userAgent string) *Client {
	c.userAgent = userAgent
	return c
}

// Mailto reports the contact email this client identifies with, if any
func (c *Client) Mailto() string {
	return c.mailto
}

// SearchWorks searches works by free-text query. Entries in filters are
// forwarded verbatim as additional URL parameters.
func (c *Client) SearchWorks(ctx context.Context, query string, limit int, filters map[string]string) (Document, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("rows", strconv.Itoa(effectiveLimit(limit)))
	for k, v := range filters {
		params.Set(k, v)
	}
	return c.get(ctx, "works", "/works", params, "works", query)
}

// GetWork retrieves a single work by DOI
func (c *Client) GetWork(ctx context.Context, doi string) (Document, error) {
	return c.get(ctx, "works", "/works/"+url.PathEscape(doi), url.Values{}, "work", doi)
}

// SearchMembers searches CrossRef members (publishers). An empty query
// lists members unfiltered.
func (c *Client) SearchMembers(ctx context.Context, query string, limit int) (Document, error) {
	return c.search(ctx, "members", "/members", query, limit)
}

// GetMember retrieves a single member by ID
func (c *Client) GetMember(ctx context.Context, id string) (Document, error) {
	return c.get(ctx, "members", "/members/"+url.PathEscape(id), url.Values{}, "member", id)
}

// SearchFunders searches the funder registry. An empty query lists
// funders unfiltered.
func (c *Client) SearchFunders(ctx context.Context, query string, limit int) (Document, error) {
	return c.search(ctx, "funders", "/funders", query, limit)
}

// GetFunder retrieves a single funder by ID
func (c *Client) GetFunder(ctx context.Context, id string) (Document, error) {
	return c.get(ctx, "funders", "/funders/"+url.PathEscape(id), url.Values{}, "funder", id)
}

// ListTypes lists all work types
func (c *Client) ListTypes(ctx context.Context) (Document, error) {
	return c.get(ctx, "types", "/types", url.Values{}, "types", "")
}

// GetType retrieves a single work type by ID
func (c *Client) GetType(ctx context.Context, id string) (Document, error) {
	return c.get(ctx, "types", "/types/"+url.PathEscape(id), url.Values{}, "type", id)
}

// ListLicenses lists licenses found in the provider's corpus
func (c *Client) ListLicenses(ctx context.Context) (Document, error) {
	return c.get(ctx, "licenses", "/licenses", url.Values{}, "licenses", "")
}

// GetAgency looks up the registration agency for a DOI
func (c *Client) GetAgency(ctx context.Context, doi string) (Document, error) {
	return c.get(ctx, "agency", "/works/"+url.PathEscape(doi)+"/agency", url.Values{}, "work", doi)
}

// SearchJournals searches journals. An empty query lists journals
// unfiltered.
func (c *Client) SearchJournals(ctx context.Context, query string, limit int) (Document, error) {
	return c.search(ctx, "journals", "/journals", query, limit)
}

// search issues a list query where the query parameter is optional
func (c *Client) search(ctx context.Context, route, requestPath, query string, limit int) (Document, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	params.Set("rows", strconv.Itoa(effectiveLimit(limit)))
	return c.get(ctx, route, requestPath, params, route, query)
}

// get performs a single provider request and decodes the body verbatim
func (c *Client) get(ctx context.Context, route, requestPath string, params url.Values, resource, identifier string) (Document, error) {
	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}

	reqURL := c.baseURL + requestPath
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	start := time.Now()
	body, statusCode, err := c.Client.DoRequest(ctx, base.RequestConfig{
		URL:       reqURL,
		UserAgent: c.requestUserAgent(),
	})
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordAPICall(route, duration, false, "transport")
		return nil, err
	}

	if statusCode == http.StatusNotFound {
		metrics.RecordAPICall(route, duration, false, strconv.Itoa(statusCode))
		return nil, apierrors.NewNotFoundError(resource, identifier)
	}
	if statusCode < 200 || statusCode > 299 {
		metrics.RecordAPICall(route, duration, false, strconv.Itoa(statusCode))
		return nil, apierrors.NewAPIError(statusCode, body)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		metrics.RecordAPICall(route, duration, false, "decode")
		return nil, fmt.Errorf("decode response: %w", err)
	}

	metrics.RecordAPICall(route, duration, true, "")
	return doc, nil
}

// requestUserAgent appends the polite-pool identification when configured
func (c *Client) requestUserAgent() string {
	if c.mailto == "" {
		return c.userAgent
	}
	return fmt.Sprintf("%s (mailto:%s)", c.userAgent, c.mailto)
}

// effectiveLimit applies the provider default when limit is unset
func effectiveLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
