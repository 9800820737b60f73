package audit

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/resinaro"
	"github.com/foomo/resinaro/config"
	"github.com/foomo/resinaro/render"
	"github.com/foomo/resinaro/store"
)

func getDataDir(path ...string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(append([]string{filepath.Dir(filename), "..", "data"}, path...)...)
}

// newTestSite serves the directory of data/listings.yaml
func newTestSite(t *testing.T) *httptest.Server {
	t.Helper()
	var site http.Handler
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	listings, err := store.LoadFile(getDataDir("listings.yaml"))
	require.NoError(t, err)
	renderer, err := render.New(render.Options{Minify: true})
	require.NoError(t, err)
	conf, err := config.Load(nil)
	require.NoError(t, err)
	conf.BaseURL = server.URL
	registry := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := resinaro.NewService(listings, conf.BaseURL, renderer, resinaro.NewMetrics(registry), logger)
	site = resinaro.NewHandler(service, conf, registry, logger)
	return server
}

func TestCrawlDirectory(t *testing.T) {
	server := newTestSite(t)
	conf := config.Audit{
		Target: config.Target{
			BaseURL: server.URL,
			Paths:   []string{"/en/directory", "/it/directory"},
		},
		Concurrency: 2,
		Agent:       "resinaro-audit",
	}
	status, err := Crawl(context.Background(), conf, nil)
	require.NoError(t, err)

	// 2 directory roots, 2 cities and 4 category pages per locale
	assert.Len(t, status.Results, 14)
	for targetURL, result := range status.Results {
		assert.Equal(t, http.StatusOK, result.Code, targetURL)
		assert.Empty(t, result.Error, targetURL)
		assert.False(t, result.Validations.HasErrors(), targetURL, result.Validations)
		assert.Len(t, result.Structure.H1s(), 1, targetURL)
	}
	category, ok := status.Results[server.URL+"/it/directory/london/restaurants"]
	require.True(t, ok)
	assert.True(t, category.Structure.HasLinkedDataType("ItemList"))
	assert.True(t, category.Structure.HasLinkedDataType("BreadcrumbList"))
	assert.True(t, category.Structure.HasLinkedDataType("Restaurant"))
	assert.Equal(t, "it-IT", category.Structure.Lang)
	assert.False(t, status.Done.Before(status.Started))
}

func TestCrawlFollowsRedirects(t *testing.T) {
	server := newTestSite(t)
	status, err := Crawl(context.Background(), config.Audit{
		Target:       config.Target{BaseURL: server.URL, Paths: []string{"/"}},
		IgnoreRobots: true,
		Depth:        2,
		MaxPages:     3,
	}, nil)
	require.NoError(t, err)
	root, ok := status.Results[server.URL+"/"]
	require.True(t, ok)
	assert.Equal(t, http.StatusFound, root.Code)
	assert.Equal(t, "/en/directory", root.Location)
	_, ok = status.Results[server.URL+"/en/directory"]
	assert.True(t, ok)
	assert.LessOrEqual(t, len(status.Results), 3)
}

func TestCrawlRobotsForbidden(t *testing.T) {
	server := newTestSite(t)
	_, err := Crawl(context.Background(), config.Audit{
		Target: config.Target{BaseURL: server.URL, Paths: []string{"/api/en/directory/london/restaurants"}},
	}, nil)
	assert.Error(t, err)
}

func TestCrawlNoTarget(t *testing.T) {
	_, err := Crawl(context.Background(), config.Audit{}, nil)
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestCrawlCancelled(t *testing.T) {
	server := newTestSite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Crawl(ctx, config.Audit{
		Target:       config.Target{BaseURL: server.URL, Paths: []string{"/en/directory"}},
		IgnoreRobots: true,
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
