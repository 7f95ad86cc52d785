// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/metrics"
	"github.com/MKhiriev/go-copper-beam/internal/service"
)

// Poller runs a [service.PollService] on a fixed interval. At most one
// cycle is in flight at a time: a tick that fires while the previous cycle
// is still running is skipped, never queued.
type Poller struct {
	name     string
	interval time.Duration
	task     service.PollService
	metrics  *metrics.Metrics
	logger   *logger.Logger

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewPoller returns a Poller named name that runs task every interval.
func NewPoller(name string, interval time.Duration, task service.PollService, m *metrics.Metrics, log *logger.Logger) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		task:     task,
		metrics:  m,
		logger:   log,
	}
}

// Run starts one cycle right away and then the ticker loop. It returns
// immediately.
func (p *Poller) Run(ctx context.Context) {
	p.Tick(ctx)

	p.wg.Go(func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Tick(ctx)
			}
		}
	})
}

// Tick starts one cycle in the background unless one is already underway.
// It reports whether a cycle was started.
func (p *Poller) Tick(ctx context.Context) bool {
	if !p.running.CompareAndSwap(false, true) {
		p.metrics.IncrementPollCyclesSkipped()
		p.logger.Error().
			Str("func", "*Poller.Tick").
			Str("poller", p.name).
			Msgf("%s already underway. Skipping cycle", p.name)
		return false
	}

	p.wg.Go(func() {
		defer p.running.Store(false)
		p.cycle(ctx)
	})
	return true
}

func (p *Poller) cycle(ctx context.Context) {
	start := time.Now()
	defer func() {
		p.metrics.ObservePollDuration(time.Since(start).Seconds())
	}()

	if err := p.task.Poll(ctx); err != nil {
		p.logger.Error().Err(err).Str("func", "*Poller.cycle").Str("poller", p.name).Msg("poll cycle failed")
	}
}

// Wait blocks until the loop and any in-flight cycle have returned.
func (p *Poller) Wait() {
	p.wg.Wait()
}
