package app

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/digimart/storefront/internal/catalog"
	"github.com/digimart/storefront/pkg/metrics"
)

// initJob wires the cron scheduler and event-bus subscriptions.
func (a *Application) initJob() {
	a.sched = cron.New()

	// Hourly catalog size gauge, so dataset swaps show up in the series.
	_, err := a.sched.AddFunc("@every 1h", a.recordCatalogGauge)
	if err != nil {
		zap.S().Errorf("failed to register catalog gauge job: %v", err)
	}

	// A reloaded dataset may reference images never probed before.
	err = a.bus.Subscribe(catalog.TopicReloaded, func(productCount int) {
		metrics.Record(metrics.MetricCatalog, "", float64(productCount))
		go a.images.Prewarm(a.catalog.Store(), a.appConfig.Catalog.PrewarmWorkers)
	})
	if err != nil {
		zap.S().Errorf("failed to subscribe catalog reload events: %v", err)
	}

	a.recordCatalogGauge()
}

func (a *Application) recordCatalogGauge() {
	store := a.catalog.Store()
	metrics.Record(metrics.MetricCatalog, "", float64(len(store.Products())))
}
