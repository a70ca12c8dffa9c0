package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Totarae/FaleProxy/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "faleproxy-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<p>Yale</p>"))
	}))
	defer srv.Close()

	f := fetcher.New(fetcher.Options{UserAgent: "faleproxy-test"})
	body, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "<p>Yale</p>", string(body))
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	body, err := fetcher.New(fetcher.Options{}).Fetch(context.Background(), srv.URL)

	assert.Nil(t, body)
	var fe *fetcher.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Contains(t, fe.Error(), "404")
}

func TestFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := fetcher.New(fetcher.Options{}).Fetch(context.Background(), addr)

	var fe *fetcher.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Zero(t, fe.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := fetcher.New(fetcher.Options{}).Fetch(context.Background(), "://nope")

	var fe *fetcher.FetchError
	assert.True(t, errors.As(err, &fe))
}

func TestFetch_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer srv.Close()

	_, err := fetcher.New(fetcher.Options{MaxBodyBytes: 16}).Fetch(context.Background(), srv.URL)
	assert.Error(t, err)

	body, err := fetcher.New(fetcher.Options{MaxBodyBytes: 64}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, 64)
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.New(fetcher.Options{}).Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
