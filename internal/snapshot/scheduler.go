package snapshot

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/arnav-k/autocompleted/internal/applog"
	"github.com/arnav-k/autocompleted/internal/constant"
	"github.com/arnav-k/autocompleted/internal/metrics"
	"github.com/arnav-k/autocompleted/internal/store"
)

// Scheduler is the single persistence worker from spec.md §4.5: a
// timer fires on a configurable interval and wakes one worker that
// walks the registry, snapshotting every namespace whose dirty
// counter is positive at the moment it's examined. The timer itself
// is github.com/robfig/cron/v3 running an "@every" schedule rather
// than a hand-rolled time.Ticker loop, giving the worker a supervised
// run loop and a human-readable interval string.
type Scheduler struct {
	cron     *cron.Cron
	store    *store.Store
	writer   *Writer
	interval time.Duration
}

// NewScheduler returns a Scheduler that sweeps st's dirty namespaces
// through w every interval.
func NewScheduler(interval time.Duration, st *store.Store, w *Writer) *Scheduler {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Scheduler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		store:    st,
		writer:   w,
		interval: interval,
	}
}

// Start registers the periodic sweep and starts the cron scheduler in
// its own goroutine. It does not block.
func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return fmt.Errorf("snapshot: scheduling sweep: %w", err)
	}

	applog.Info(constant.MsgSchedulerStarting, applog.LoggerInfo{
		ContextFunction: constant.CtxScheduler,
		Data: map[string]interface{}{
			constant.DataInterval: s.interval.String(),
		},
	})

	s.cron.Start()
	return nil
}

// Stop halts the scheduler and blocks until any in-flight sweep has
// finished, then performs one final full-namespace snapshot pass
// (every namespace, not just dirty ones skipped between the last two
// sweeps) — the graceful-shutdown guarantee from spec.md §5.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.finalSweep()
}

// sweep snapshots every namespace whose dirty counter is currently
// positive. Write errors are logged and leave the namespace dirty for
// the next sweep to retry — never fatal to the process.
func (s *Scheduler) sweep() {
	applog.Debug(constant.MsgSchedulerSweepStart, applog.LoggerInfo{
		ContextFunction: constant.CtxScheduler,
	})

	targets := s.store.DirtyNamespaces()
	for _, ns := range targets {
		s.writeAndObserve(ns)
	}

	applog.Debug(constant.MsgSchedulerSweepDone, applog.LoggerInfo{
		ContextFunction: constant.CtxScheduler,
		Data: map[string]interface{}{
			"namespaces_swept": len(targets),
		},
	})
}

// finalSweep snapshots every namespace regardless of dirty state,
// performed once during graceful shutdown.
func (s *Scheduler) finalSweep() {
	for _, ns := range s.store.AllNamespaces() {
		s.writeAndObserve(ns)
	}
}

// writeAndObserve writes ns's snapshot, logging and counting the
// outcome in the ambient snapshot-writes-total counter.
func (s *Scheduler) writeAndObserve(ns *store.Namespace) {
	if err := s.writer.WriteNamespace(ns); err != nil {
		metrics.SnapshotWritesTotal.WithLabelValues("failure").Inc()
		applog.Error("Failed to write namespace snapshot", applog.LoggerInfo{
			ContextFunction: constant.CtxScheduler,
			Error: &applog.CustomError{
				Code:    constant.ErrCodeSnapshotWrite,
				Message: err.Error(),
				Type:    constant.ErrTypeSnapshot,
			},
			Data: map[string]interface{}{
				constant.DataNamespace: ns.Name(),
			},
		})
		return
	}
	metrics.SnapshotWritesTotal.WithLabelValues("success").Inc()
}
