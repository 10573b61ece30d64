package app

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/digimart/storefront/config"
	"github.com/digimart/storefront/internal/catalog"
	"github.com/digimart/storefront/internal/imageproxy"
	"github.com/digimart/storefront/pkg/metrics"
)

type Application struct {
	appConfig *config.AppConfig
	catalog   *catalog.Handle
	bus       EventBus.Bus
	sched     *cron.Cron
	images    *imageproxy.Service
	startedAt time.Time
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ CatalogProvider   = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ ImageProvider     = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Catalog() *catalog.Handle {
	return a.catalog
}

// OverrideCatalog replaces the catalog handle (used in tests).
func (a *Application) OverrideCatalog(h *catalog.Handle) {
	a.catalog = h
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Images() *imageproxy.Service {
	return a.images
}

func (a *Application) StartedAt() time.Time {
	return a.startedAt
}

func (a *Application) Init(cfg *config.AppConfig) error {
	a.startedAt = time.Now()

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	if err := cfg.InitDirs(); err != nil {
		zap.S().Warnf("failed to prepare workdir: %v", err)
	}

	// Initialize metrics with workdir convention
	if err := metrics.InitMetrics(cfg.System.Workdir); err != nil {
		zap.S().Warn("Failed to initialize metrics:", err)
	}

	// Load the catalog snapshot. A dataset that cannot be loaded is a fatal
	// startup condition; there is nothing to serve without it.
	ds, err := catalog.LoadDataset(cfg.Catalog.Datadir)
	if err != nil {
		return err
	}
	a.catalog = catalog.NewHandle(catalog.NewStore(ds))
	zap.S().Infof("catalog loaded, products: %d, categories: %d",
		len(ds.Products), len(ds.Categories))

	a.bus = EventBus.New()
	a.images = imageproxy.NewService(
		cfg.System.Workdir+"/images",
		time.Duration(cfg.Catalog.ImageTimeoutSec)*time.Second,
	)

	a.initJob()
	return nil
}

// StartBackgroundJobs launches the cron scheduler, the startup image prewarm
// and, when enabled, the catalog file watcher.
func (a *Application) StartBackgroundJobs(ctx context.Context) {
	a.sched.Start()

	go a.images.Prewarm(a.catalog.Store(), a.appConfig.Catalog.PrewarmWorkers)

	if a.appConfig.Catalog.Watch && a.appConfig.Catalog.Datadir != "" {
		w, err := catalog.NewWatcher(a.appConfig.Catalog.Datadir, a.catalog, a.bus)
		if err != nil {
			zap.S().Errorf("catalog watcher init failed: %v", err)
			return
		}
		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				zap.S().Errorf("catalog watcher stopped: %v", err)
			}
		}()
	}
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	_ = metrics.Close()
	_ = zap.L().Sync()
}
