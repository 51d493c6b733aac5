package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smalltalk/app/config"

	"github.com/samber/do"
	"github.com/samber/oops"
)

// Client fetches quotes from API Ninjas. A category-less request is a
// distinct call (Random), never an empty-string category.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Providers.TimeoutSec) * time.Second,
		},
	}, nil
}

type apiQuote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// Random returns a random quote from any category.
func (c *Client) Random(ctx context.Context) (string, error) {
	return c.fetch(ctx, c.cfg.Providers.Quotes.BaseURL)
}

// ByCategory returns a random quote from the given category.
func (c *Client) ByCategory(ctx context.Context, category string) (string, error) {
	query := url.Values{}
	query.Set("category", strings.ToLower(strings.TrimSpace(category)))

	return c.fetch(ctx, c.cfg.Providers.Quotes.BaseURL+"?"+query.Encode())
}

func (c *Client) fetch(ctx context.Context, requestURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", oops.Errorf("failed to create quote request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.cfg.Providers.Quotes.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", oops.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", oops.Errorf("quote request failed: status %d", resp.StatusCode)
	}

	var data []apiQuote
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", oops.Errorf("failed to parse quote response: %w", err)
	}

	if len(data) == 0 {
		return "", oops.Errorf("quote response is empty")
	}

	return fmt.Sprintf("%q\n— %s", data[0].Quote, data[0].Author), nil
}
