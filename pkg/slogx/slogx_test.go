package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Killercavin/HealthInfoSystem/pkg/idx"
	"github.com/Killercavin/HealthInfoSystem/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.NewWithWriter(slogx.Config{
		Service: "his",
		Version: "test",
		Env:     "test",
		Level:   "info",
	}, &buf)

	logger.Debug("hidden")
	logger.Info("visible", "k", "v")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "visible", rec["msg"])
	require.Equal(t, "his", rec["service"])
	require.Equal(t, "v", rec["k"])
}

func TestNewMirrorsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "his.log")

	var buf bytes.Buffer
	logger := slogx.NewWithWriter(slogx.Config{Service: "his", Format: "text", File: path}, &buf)
	logger.Info("to both")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to both")
	require.Contains(t, buf.String(), "to both")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var inner *slog.Logger
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = slogx.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates a request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/programs", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))
		require.NotNil(t, inner)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "http_request", line["msg"])
		require.EqualValues(t, http.StatusTeapot, line["status"])
		require.Equal(t, "/api/programs", line["path"])
	})

	t.Run("propagates a caller supplied request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(slogx.RequestIDHeader, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", rec.Header().Get(slogx.RequestIDHeader))
		require.Contains(t, buf.String(), `"req_id":"01ARZ3NDEKTSV4RRFFQ69G5FAV"`)
	})

	t.Run("replaces a malformed request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(slogx.RequestIDHeader, "abc-123\ninjected")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		got := rec.Header().Get(slogx.RequestIDHeader)
		require.NotEqual(t, "abc-123\ninjected", got)
		_, err := idx.Parse(got)
		require.NoError(t, err)
		require.NotContains(t, buf.String(), "injected")
	})
}
