package shopapi

import (
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"go.uber.org/zap"

	"github.com/digimart/storefront/internal/webserver"
)

// registerStatusRoutes registers the operational status endpoint
func registerStatusRoutes() {
	webserver.ApiGET("/status", getStatus)
}

func getStatus(c echo.Context) error {
	appc := webserver.GetAppContext(c)
	store := appc.Catalog().Store()

	status := map[string]interface{}{
		"uptime_sec": int64(time.Since(appc.StartedAt()).Seconds()),
		"goroutines": runtime.NumGoroutine(),
		"catalog": map[string]interface{}{
			"products":   len(store.Products()),
			"categories": len(store.Categories()),
		},
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status["cpu_percent"] = percents[0]
	} else if err != nil {
		zap.S().Debugf("cpu stat unavailable: %v", err)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		status["memory"] = map[string]interface{}{
			"total":        bytes.Format(int64(vm.Total)),
			"used":         bytes.Format(int64(vm.Used)),
			"used_percent": vm.UsedPercent,
		}
	}

	return ok(c, status)
}
