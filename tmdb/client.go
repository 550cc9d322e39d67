package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cinefind/cinefind/auth"
	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/network"
	json "github.com/goccy/go-json"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// Options configures a Client. Zero values fall back to the public API and the shared HTTP client.
type Options struct {
	BaseURL           string
	Token             string
	Language          string
	IncludeAdult      bool
	RequestsPerSecond int
	HTTPClient        *http.Client
}

// Client performs authenticated read-only requests against the catalog.
type Client struct {
	baseURL      string
	token        string
	language     string
	includeAdult bool
	http         *http.Client
	limiter      *rate.Limiter
}

// New creates a catalog client.
func New(options Options) *Client {
	c := &Client{
		baseURL:      strings.TrimSuffix(options.BaseURL, "/"),
		token:        options.Token,
		language:     options.Language,
		includeAdult: options.IncludeAdult,
		http:         options.HTTPClient,
		limiter:      rate.NewLimiter(rate.Inf, 1),
	}

	if c.baseURL == "" {
		c.baseURL = constant.TMDBAPIBase
	}

	if c.http == nil {
		c.http = network.Client
	}

	if rps := options.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}

	return c
}

// NewFromConfig creates a catalog client from the global configuration and the stored credential.
func NewFromConfig() *Client {
	token, source := auth.Token()
	log.Debugf("catalog token source: %s", source)

	return New(Options{
		BaseURL:           viper.GetString(key.CatalogBaseURL),
		Token:             token,
		Language:          viper.GetString(key.CatalogLanguage),
		IncludeAdult:      viper.GetBool(key.CatalogIncludeAdult),
		RequestsPerSecond: viper.GetInt(key.CatalogRequestsPerSecond),
	})
}

// Endpoint returns the URL requested for query.
// A non-empty query selects text search, an empty one selects the popularity-sorted discovery listing.
func (c *Client) Endpoint(query string) string {
	var endpoint string
	if query != "" {
		endpoint = fmt.Sprintf("%s/search/movie?query=%s", c.baseURL, EncodeQuery(query))
	} else {
		endpoint = c.baseURL + "/discover/movie?sort_by=popularity.desc"
	}

	if c.language != "" {
		endpoint += "&language=" + EncodeQuery(c.language)
	}

	if c.includeAdult {
		endpoint += "&include_adult=true"
	}

	return endpoint
}

// componentUnescaper undoes the escapes url.QueryEscape adds beyond those of JavaScript's encodeURIComponent.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeQuery percent-encodes s the way encodeURIComponent does: spaces become %20
// and the marks !'()* are left as they are.
func EncodeQuery(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Movies requests the listing for query, see Endpoint.
// Transport and decoding failures are returned as wrapped errors; a non-OK status is returned as *StatusError.
func (c *Client) Movies(ctx context.Context, query string) (*Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for catalog rate limit: %w", err)
	}

	endpoint := c.Endpoint(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	log.Infof("Requesting %s", req.URL.Path)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request catalog: %w", err)
	}
	defer resp.Body.Close()

	// The body is read before the status is checked: failures carry their reason in it.
	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode catalog response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Message: page.StatusMessage}
	}

	if page.Results == nil {
		page.Results = []*Movie{}
	}

	log.Infof("Got response from catalog, found %d results", len(page.Results))
	return &page, nil
}

// Search runs a text search. An empty query is rejected rather than silently turned into discovery.
func (c *Client) Search(ctx context.Context, query string) (*Page, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	return c.Movies(ctx, query)
}

// Discover lists movies sorted by popularity.
func (c *Client) Discover(ctx context.Context) (*Page, error) {
	return c.Movies(ctx, "")
}
