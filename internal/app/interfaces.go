package app

import (
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/digimart/storefront/config"
	"github.com/digimart/storefront/internal/catalog"
	"github.com/digimart/storefront/internal/imageproxy"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// CatalogProvider provides access to the current catalog snapshot
type CatalogProvider interface {
	Catalog() *catalog.Handle
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// ImageProvider provides the image proxy service
type ImageProvider interface {
	Images() *imageproxy.Service
}

// WebContext is the narrow surface handlers depend on. Tests stub this
// instead of building a full Application.
type WebContext interface {
	ConfigProvider
	CatalogProvider
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	CatalogProvider
	BusProvider
	SchedulerProvider
	ImageProvider

	StartedAt() time.Time
}
