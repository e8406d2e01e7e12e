package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northlightstudio/website/internal/config"
)

func testRouter() http.Handler {
	cfg := &config.Config{
		Port:         ":4002",
		SchedulerURL: "https://cal.example/northlight?embed=true",
		FormAction:   "/",
	}

	r := chi.NewRouter()
	r.Get("/", LandingPage(cfg))
	r.Get("/booking/pane", BookingPane(cfg))
	r.Get("/health", Health)
	return r
}

func get(t *testing.T, handler http.Handler, path string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// TestLandingPageRendering verifies which booking pane the page carries
// for each mode selection.
func TestLandingPageRendering(t *testing.T) {
	handler := testRouter()

	tests := []struct {
		name        string
		path        string
		contains    []string
		notContains []string
	}{
		{
			name: "initial load shows the scheduler",
			path: "/",
			contains: []string{
				"<!DOCTYPE html>",
				"Northlight Studio",
				"<iframe",
				"https://cal.example/northlight?embed=true",
				`aria-pressed="true"`,
			},
			notContains: []string{
				`name="bot-field"`,
				`method="post"`,
			},
		},
		{
			name: "request mode shows the quote form",
			path: "/?booking=request",
			contains: []string{
				"<!DOCTYPE html>",
				`method="post"`,
				`action="/"`,
				`name="form-name"`,
				`name="bot-field"`,
				`name="name"`,
				`name="email"`,
				`name="phone"`,
				`name="date"`,
				`name="package"`,
				`name="message"`,
				"Choose a package",
			},
			notContains: []string{
				"<iframe",
			},
		},
		{
			name: "instant mode explicitly",
			path: "/?booking=instant",
			contains: []string{
				"<iframe",
			},
			notContains: []string{
				`name="bot-field"`,
			},
		},
		{
			name: "unknown mode falls back to the scheduler",
			path: "/?booking=banana",
			contains: []string{
				"<iframe",
			},
			notContains: []string{
				`name="bot-field"`,
			},
		},
		{
			name: "booking pane partial for instant",
			path: "/booking/pane?mode=instant",
			contains: []string{
				`id="booking"`,
				"<iframe",
			},
			notContains: []string{
				"<!DOCTYPE html>",
				"<html",
				`name="bot-field"`,
			},
		},
		{
			name: "booking pane partial for request",
			path: "/booking/pane?mode=request",
			contains: []string{
				`id="booking"`,
				`method="post"`,
				`name="bot-field"`,
			},
			notContains: []string{
				"<!DOCTYPE html>",
				"<html",
				"<iframe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, handler, tt.path)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, body, unwanted)
			}
		})
	}
}

// Toggling back and forth never leaves both panes, or neither pane, in
// the markup.
func TestTogglingRendersExactlyOnePane(t *testing.T) {
	handler := testRouter()

	paths := []string{
		"/",
		"/?booking=request",
		"/?booking=instant",
		"/?booking=request",
		"/booking/pane?mode=request",
		"/booking/pane?mode=instant",
	}

	for _, path := range paths {
		_, body := get(t, handler, path)

		hasFrame := strings.Contains(body, "<iframe")
		hasForm := strings.Contains(body, `name="bot-field"`)
		assert.NotEqual(t, hasFrame, hasForm, "path %s must render exactly one pane", path)
	}
}

func TestHealth(t *testing.T) {
	handler := testRouter()

	resp, body := get(t, handler, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, body)
}
