package jokes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"smalltalk/app/config"

	"github.com/samber/do"
	"github.com/samber/oops"
)

// Client fetches random dad jokes from icanhazdadjoke.
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

type apiResponse struct {
	Joke string `json:"joke"`
}

func (c *Client) GetJoke(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Providers.Jokes.BaseURL, nil)
	if err != nil {
		return "", oops.Errorf("failed to create joke request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", oops.Errorf("joke request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", oops.Errorf("joke request failed: status %d", resp.StatusCode)
	}

	var data apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", oops.Errorf("failed to parse joke response: %w", err)
	}

	return data.Joke, nil
}
