package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ng-jenkins-demo/internal/config"
	"ng-jenkins-demo/internal/core"
	tlog "ng-jenkins-demo/internal/log"
	"ng-jenkins-demo/internal/notify"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := tlog.IntoContext(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	cfg := &config.Config{}
	s, err := New(ctx, cfg, Options{
		ShellIDs: core.StaticID("BUILD_SHELL"),
		HomeIDs:  core.StaticID("BUILD_HOME"),
		Now:      func() time.Time { return time.Unix(1700000000, 0) },
	})
	require.NoError(t, err)

	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t)
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-Id"))
}

func TestHome(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Version: 1.0.0 | Build: BUILD_SHELL")
	assert.Contains(t, string(body), "BUILD_HOME")
}

func TestBuild(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/api/build")

	var body buildResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1.0.0", body.Version)
	assert.Equal(t, "BUILD_SHELL", body.BuildID)
}

func TestPipeline(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/api/pipeline")

	var body struct {
		Status core.BuildInfo       `json:"status"`
		Stages []core.NumberedStage `json:"stages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Production", body.Status.Environment)
	require.Len(t, body.Stages, 8)
	assert.Equal(t, 1, body.Stages[0].Position)
	assert.Equal(t, "Checkout", body.Stages[0].Name)
}

func TestNotifications(t *testing.T) {
	ts := newTestServer(t)

	var all []notify.Notification
	require.NoError(t, json.NewDecoder(get(t, ts, "/api/notifications").Body).Decode(&all))
	assert.Equal(t, notify.All(), all)

	var health notify.Notification
	require.NoError(t, json.NewDecoder(get(t, ts, "/api/notifications/health").Body).Decode(&health))
	assert.Equal(t, "Health check endpoint: /health\nStatus: Healthy ✅", health.Message)

	resp := get(t, ts, "/api/notifications/deploy")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticAssets(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/static/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStartStopsOnCancel(t *testing.T) {
	ctx := tlog.IntoContext(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg := &config.Config{Server: config.ServerConfig{
		ListenHost:      "127.0.0.1",
		Port:            "0",
		ShutdownTimeout: time.Second,
	}}
	s, err := New(ctx, cfg, Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
