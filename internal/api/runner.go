package api

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/gommon/log"

	"radar-atc/internal/game/simulation"
)

// Runner owns a simulation and serializes every access to it. Ticks and
// operator requests never interleave.
type Runner struct {
	mu  sync.Mutex
	sim *simulation.Simulation
}

func NewRunner(sim *simulation.Simulation) *Runner {
	return &Runner{sim: sim}
}

// Run steps the simulation at its tick rate until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	r.mu.Lock()
	interval := time.Duration(float64(time.Second) / r.sim.TickRate)
	r.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infof("Runner started, tick every %v", interval)
	for {
		select {
		case <-ctx.Done():
			log.Info("Runner stopped")
			return
		case <-ticker.C:
			r.Do(func(s *simulation.Simulation) {
				s.Step()
			})
		}
	}
}

// Do runs fn with exclusive access to the simulation.
func (r *Runner) Do(fn func(s *simulation.Simulation)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.sim)
}

func (r *Runner) State() simulation.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sim.Snapshot()
}
