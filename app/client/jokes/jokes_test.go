package jokes

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
	cfg.Providers.Jokes.BaseURL = baseURL

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestGetJoke(t *testing.T) {
	var gotAccept string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "abc", "joke": "I used to hate facial hair, but then it grew on me.", "status": 200}`))
	}))
	defer srv.Close()

	joke, err := newTestClient(srv.URL).GetJoke(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "I used to hate facial hair, but then it grew on me.", joke)
}

func TestGetJokeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetJoke(context.Background())
	require.Error(t, err)
}
