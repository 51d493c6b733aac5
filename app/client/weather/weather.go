package weather

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

// Client fetches current conditions from OpenWeatherMap.
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
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// GetWeather returns a human-readable report for the city, or the fixed
// not-found message when the city is unknown to the API.
func (c *Client) GetWeather(ctx context.Context, city string) (string, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.cfg.Providers.Weather.APIKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.Providers.Weather.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", oops.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", oops.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "City not found. Please enter a valid city name.", nil
	}

	if resp.StatusCode != http.StatusOK {
		return "", oops.Errorf("weather request failed: status %d", resp.StatusCode)
	}

	var data apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", oops.Errorf("failed to parse weather response: %w", err)
	}

	description := ""
	if len(data.Weather) > 0 {
		description = data.Weather[0].Description
	}

	report := fmt.Sprintf("Weather in %s:\n"+
		"Temperature: %.1f°C\n"+
		"Feels Like: %.1f°C\n"+
		"Humidity: %d%%\n"+
		"Condition: %s\n"+
		"Wind Speed: %.1f m/s\n"+
		"Pressure: %d hPa",
		capitalize(city),
		data.Main.Temp,
		data.Main.FeelsLike,
		data.Main.Humidity,
		capitalize(description),
		data.Wind.Speed,
		data.Main.Pressure,
	)

	return report, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
