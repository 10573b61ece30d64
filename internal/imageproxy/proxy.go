// Package imageproxy serves product image references and converts load
// failures into a placeholder response. The contract with callers is the same
// as the storefront's image component: give it a source reference, receive
// either image bytes or the fallback.
package imageproxy

import (
	_ "embed"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

//go:embed placeholder.svg
var placeholderSVG []byte

// Service resolves image references. Absolute http(s) references are fetched
// upstream; everything else is read from the static image directory under the
// workdir. Failed sources are latched and answered with the placeholder.
type Service struct {
	staticDir string
	timeout   time.Duration
	latch     *failLatch
}

func NewService(staticDir string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		staticDir: staticDir,
		timeout:   timeout,
		latch:     newFailLatch(),
	}
}

// Resolve returns the image bytes and content type for src, or ok=false when
// the source is (or becomes) latched as failed.
func (s *Service) Resolve(src string) (data []byte, contentType string, ok bool) {
	if src == "" || s.latch.Failed(src) {
		return nil, "", false
	}

	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		data, contentType, ok = s.fetchUpstream(src)
	} else {
		data, contentType, ok = s.readLocal(src)
	}
	if !ok {
		s.latch.MarkFailed(src)
	}
	return data, contentType, ok
}

func (s *Service) fetchUpstream(src string) ([]byte, string, bool) {
	var body []byte
	var code int
	rspHeader := struct {
		ContentType string `header:"Content-Type"`
	}{}

	err := gout.GET(src).
		SetTimeout(s.timeout).
		BindBody(&body).
		BindHeader(&rspHeader).
		Code(&code).
		Do()
	if err != nil || code != http.StatusOK || len(body) == 0 {
		zap.S().Debugf("image fetch failed src=%s code=%d err=%v", src, code, err)
		return nil, "", false
	}
	ct := rspHeader.ContentType
	if ct == "" {
		ct = http.DetectContentType(body)
	}
	return body, ct, true
}

func (s *Service) readLocal(src string) ([]byte, string, bool) {
	// References look like /images/products/slug.jpg; they are mapped under
	// the static dir with traversal stripped.
	rel := filepath.Clean("/" + strings.TrimPrefix(src, "/images"))
	data, err := os.ReadFile(filepath.Join(s.staticDir, rel))
	if err != nil {
		return nil, "", false
	}
	return data, http.DetectContentType(data), true
}

// Placeholder returns the embedded fallback image.
func (s *Service) Placeholder() ([]byte, string) {
	return placeholderSVG, "image/svg+xml"
}

// Serve handles GET /img?src=<reference>. A failed source answers 200 with
// the placeholder, never an error status.
func (s *Service) Serve(c echo.Context) error {
	src := c.QueryParam("src")
	data, ct, ok := s.Resolve(src)
	if !ok {
		data, ct = s.Placeholder()
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, ct, data)
}
