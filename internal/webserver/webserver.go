package webserver

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/digimart/storefront/internal/app"
	"github.com/digimart/storefront/pkg/metrics"
)

const appCtxKey = "storefront_appctx"

var server *WebServer

type WebServer struct {
	root *echo.Echo
	appc app.AppContext
}

// Init builds the singleton web server. Route registration helpers below are
// only valid after Init.
func Init(appc app.AppContext) {
	server = NewWebServer(appc)
}

func NewWebServer(appc app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	node, err := snowflake.NewNode(1)
	if err != nil {
		zap.S().Errorf("snowflake node init failed: %v", err)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			if node == nil {
				return ""
			}
			return node.Generate().String()
		},
	}))
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(requestLogger())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appCtxKey, appc)
			return next(c)
		}
	})

	e.GET("/metrics", echoprometheus.NewHandler())

	return &WebServer{root: e, appc: appc}
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			req := c.Request()
			path := req.URL.Path
			if strings.HasPrefix(path, "/api/") {
				metrics.Record(metrics.MetricAPIRequest, path, 1)
			}
			zap.L().Debug("http request",
				zap.String("method", req.Method),
				zap.String("path", path),
				zap.Int("status", c.Response().Status),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Duration("latency", time.Since(start)))
			return err
		}
	}
}

// GetApp extracts the handler-facing application context injected by the
// middleware. Tests set the same key on a bare echo context.
func GetApp(c echo.Context) app.WebContext {
	return c.Get(appCtxKey).(app.WebContext)
}

// GetAppContext extracts the full application context for operational
// handlers that need more than config and catalog.
func GetAppContext(c echo.Context) app.AppContext {
	return c.Get(appCtxKey).(app.AppContext)
}

// SetAppContext injects an application context into an echo context; used by
// handler tests.
func SetAppContext(c echo.Context, appc interface{}) {
	c.Set(appCtxKey, appc)
}

// SetRenderer installs the page template renderer.
func SetRenderer(r echo.Renderer) {
	server.root.Renderer = r
}

// ApiGET registers a GET route under the /api prefix.
func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api"+path, h)
}

// ApiPOST registers a POST route under the /api prefix.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/api"+path, h)
}

// WebGET registers a GET route at the site root.
func WebGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

// Listen starts serving and blocks until the server stops.
func Listen() error {
	addr := server.appc.Config().ListenAddr()
	zap.S().Infof("web server listening on %s", addr)
	return server.root.Start(addr)
}

// Shutdown stops the server gracefully.
func Shutdown(ctx context.Context) error {
	if server == nil {
		return nil
	}
	return server.root.Shutdown(ctx)
}
