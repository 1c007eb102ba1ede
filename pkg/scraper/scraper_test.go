package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFetchURL(t *testing.T) {
	userAgent := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent <- r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	body, err := NewClient(Options{}).FetchURL(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "<html><body>ok</body></html>", string(body))
	require.Contains(t, <-userAgent, "Mozilla/5.0")
}

func TestFetchURLNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("blocked"))
	}))
	defer server.Close()

	body, err := NewClient(Options{}).FetchURL(context.Background(), server.URL)
	require.Nil(t, body)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusForbidden, statusErr.Code)
}

func TestFetchURLTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewClient(Options{Timeout: 50 * time.Millisecond}).FetchURL(context.Background(), server.URL)
	require.Error(t, err)

	var statusErr *StatusError
	require.False(t, errors.As(err, &statusErr))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<table></table>"), 0644))

	content, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<table></table>", string(content))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}
