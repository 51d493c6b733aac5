package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smalltalk/app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.Providers.Quotes.APIKey = "test-key"
	cfg.Providers.Quotes.BaseURL = baseURL

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func quoteHandler(t *testing.T, category *string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		*category = r.URL.Query().Get("category")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"quote": "Be yourself; everyone else is already taken.", "author": "Oscar Wilde", "category": "inspirational"}]`))
	}
}

func TestRandomHasNoCategory(t *testing.T) {
	var gotCategory string

	srv := httptest.NewServer(quoteHandler(t, &gotCategory))
	defer srv.Close()

	quote, err := newTestClient(srv.URL).Random(context.Background())
	require.NoError(t, err)

	assert.Empty(t, gotCategory)
	assert.Equal(t, "\"Be yourself; everyone else is already taken.\"\n— Oscar Wilde", quote)
}

func TestByCategoryNormalizesCategory(t *testing.T) {
	var gotCategory string

	srv := httptest.NewServer(quoteHandler(t, &gotCategory))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ByCategory(context.Background(), "  Love ")
	require.NoError(t, err)

	assert.Equal(t, "love", gotCategory)
}

func TestEmptyResponseIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Random(context.Background())
	require.Error(t, err)
}
