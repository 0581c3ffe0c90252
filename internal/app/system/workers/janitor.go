// internal/app/system/workers/janitor.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/assetmanager/internal/app/system/listcache"
	"go.uber.org/zap"
)

// Purger removes stored records older than maxAge. It is implemented by the
// prefill store.
type Purger interface {
	Purge(ctx context.Context, maxAge time.Duration) (int64, error)
}

// Janitor is a background worker that purges unconsumed prefill handoffs
// and forgets list caches of idle sessions.
type Janitor struct {
	prefill       Purger
	caches        []listcache.Evicter
	log           *zap.Logger
	interval      time.Duration
	prefillMaxAge time.Duration
	cacheMaxAge   time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
}

// JanitorConfig holds the sweep interval and retention ages.
type JanitorConfig struct {
	Interval      time.Duration // how often to sweep (e.g., 5 minutes)
	PrefillMaxAge time.Duration // unconsumed handoffs older than this are deleted
	CacheMaxAge   time.Duration // cached lists older than this are dropped
}

// NewJanitor creates a janitor. prefill may be nil when no MongoDB is
// configured; only the caches are swept then.
func NewJanitor(prefill Purger, caches []listcache.Evicter, logger *zap.Logger, cfg JanitorConfig) *Janitor {
	return &Janitor{
		prefill:       prefill,
		caches:        caches,
		log:           logger,
		interval:      cfg.Interval,
		prefillMaxAge: cfg.PrefillMaxAge,
		cacheMaxAge:   cfg.CacheMaxAge,
		stopCh:        make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *Janitor) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("janitor worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("prefill_max_age", w.prefillMaxAge),
		zap.Duration("listcache_max_age", w.cacheMaxAge))
}

// Stop signals the worker to stop and waits for it to finish. It is safe
// to call more than once.
func (w *Janitor) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("janitor worker stopped")
	})
}

func (w *Janitor) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep runs one cleanup pass.
func (w *Janitor) Sweep() {
	dropped := 0
	for _, c := range w.caches {
		dropped += c.Sweep(w.cacheMaxAge)
	}
	if dropped > 0 {
		w.log.Debug("dropped idle list caches", zap.Int("count", dropped))
	}

	if w.prefill == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := w.prefill.Purge(ctx, w.prefillMaxAge)
	if err != nil {
		w.log.Error("failed to purge device prefills", zap.Error(err))
		return
	}

	if count > 0 {
		w.log.Info("purged unconsumed device prefills", zap.Int64("count", count))
	}
}
