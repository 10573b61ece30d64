package imageproxy

import (
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/digimart/storefront/internal/catalog"
)

// Prewarm probes every primary image reference in the catalog through a
// bounded worker pool, latching dead sources up front so the first page
// render already shows placeholders instead of waiting on timeouts.
func (s *Service) Prewarm(store *catalog.Store, workers int) {
	if workers <= 0 {
		return
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		zap.S().Warnf("image prewarm pool: %v", err)
		return
	}
	defer pool.Release()

	start := time.Now()
	products := store.Products()

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0
	for _, p := range products {
		src := p.Image
		if src == "" {
			continue
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if _, _, ok := s.Resolve(src); !ok {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
		}
	}
	wg.Wait()

	zap.L().Info("image prewarm done",
		zap.Int("probed", len(products)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)))
}
