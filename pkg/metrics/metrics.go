// Package metrics records storefront counters (page views, API hits, catalog
// sizes) as time series in an embedded tstorage database under the workdir.
package metrics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/nakabonne/tstorage"
)

const (
	MetricPageView   = "storefront_page_view"
	MetricAPIRequest = "storefront_api_request"
	MetricCatalog    = "storefront_catalog_products"
)

var (
	mu      sync.RWMutex
	storage tstorage.Storage
)

// InitMetrics opens the metrics store under workdir. Call once at startup.
func InitMetrics(workdir string) error {
	s, err := tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithPartitionDuration(6*time.Hour),
	)
	if err != nil {
		return err
	}
	mu.Lock()
	storage = s
	mu.Unlock()
	return nil
}

// Record inserts one datapoint for metric with the given label. Recording
// before InitMetrics (or after Close) is a no-op so callers never need to
// guard the hot path.
func Record(metric, label string, value float64) {
	mu.RLock()
	s := storage
	mu.RUnlock()
	if s == nil {
		return
	}
	labels := []tstorage.Label{}
	if label != "" {
		labels = append(labels, tstorage.Label{Name: "name", Value: label})
	}
	_ = s.InsertRows([]tstorage.Row{{
		Metric:    metric,
		Labels:    labels,
		DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: value},
	}})
}

// Range returns datapoints for metric/label between start and end (unix
// seconds). A metric with no points returns an empty slice.
func Range(metric, label string, start, end int64) ([]*tstorage.DataPoint, error) {
	mu.RLock()
	s := storage
	mu.RUnlock()
	if s == nil {
		return nil, nil
	}
	labels := []tstorage.Label{}
	if label != "" {
		labels = append(labels, tstorage.Label{Name: "name", Value: label})
	}
	points, err := s.Select(metric, labels, start, end)
	if err == tstorage.ErrNoDataPoints {
		return []*tstorage.DataPoint{}, nil
	}
	return points, err
}

// Close flushes and closes the metrics store.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil
	}
	err := storage.Close()
	storage = nil
	return err
}
