package main

import (
	"context"
	"database/sql"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               8080,
			LogLevel:           "debug",
			ReadTimeout:        5 * time.Second,
			WriteTimeout:       5 * time.Second,
			IdleTimeout:        30 * time.Second,
			ShutdownTimeout:    5 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Driver: DriverSQLite,
			URL:    ":memory:",
		},
	}
}

func newTestApp(t *testing.T, db *sql.DB) *application {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	app, err := newApplication(testConfig(), log, db)
	require.NoError(t, err)
	return app
}

func TestNewApplicationUnsupportedDriver(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	cfg := testConfig()
	cfg.Database.Driver = "mysql"

	_, err := newApplication(cfg, log, testdb.NewSQLite(t))
	assert.Error(t, err)
}

func TestSetupRouterServesTasks(t *testing.T) {
	app := newTestApp(t, testdb.NewSQLite(t))
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/tasks", "application/json",
		strings.NewReader(`{"title":"Buy milk","description":"2%, 1 gallon"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/tasks/recent")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"title":"Buy milk"`)

	resp, err = http.Get(srv.URL + "/ready")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewHTTPServerTimeouts(t *testing.T) {
	app := newTestApp(t, testdb.NewSQLite(t))
	server := app.newHTTPServer(http.NotFoundHandler())

	assert.Equal(t, ":8080", server.Addr)
	assert.Equal(t, 5*time.Second, server.ReadTimeout)
	assert.Equal(t, 5*time.Second, server.WriteTimeout)
	assert.Equal(t, 30*time.Second, server.IdleTimeout)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	db := testdb.NewSQLite(t)
	app := newTestApp(t, db)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, app.newHTTPServer(app.setupRouter()), ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.Error(t, db.Ping(), "database is closed on shutdown")
}
