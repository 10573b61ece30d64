package imageproxy

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 PNG
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestResolveLocalFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products", "a.png"), tinyPNG, 0o644))

	s := NewService(dir, time.Second)
	data, ct, ok := s.Resolve("/images/products/a.png")
	require.True(t, ok)
	assert.Equal(t, tinyPNG, data)
	assert.Equal(t, "image/png", ct)
}

func TestResolveMissingLocalFileLatches(t *testing.T) {
	s := NewService(t.TempDir(), time.Second)

	_, _, ok := s.Resolve("/images/products/missing.jpg")
	assert.False(t, ok)

	// Second resolve short-circuits on the latch; no retry.
	_, _, ok = s.Resolve("/images/products/missing.jpg")
	assert.False(t, ok)
}

func TestResolveUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(tinyPNG)
	}))
	defer upstream.Close()

	s := NewService(t.TempDir(), 2*time.Second)
	data, ct, ok := s.Resolve(upstream.URL + "/img.png")
	require.True(t, ok)
	assert.Equal(t, tinyPNG, data)
	assert.Equal(t, "image/png", ct)
}

func TestResolveUpstreamErrorLatches(t *testing.T) {
	hits := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	s := NewService(t.TempDir(), 2*time.Second)
	src := upstream.URL + "/gone.png"

	_, _, ok := s.Resolve(src)
	assert.False(t, ok)
	_, _, ok = s.Resolve(src)
	assert.False(t, ok)
	assert.Equal(t, 1, hits, "latched source must not be refetched")
}

func TestServeFallsBackToPlaceholder(t *testing.T) {
	s := NewService(t.TempDir(), time.Second)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/img?src=%2Fimages%2Fnope.jpg", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.Serve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "Image unavailable")
}
