// Package sweep periodically removes expired hold rows. Expiry itself is a
// read-time predicate; the sweeper only reclaims storage.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

type Sweeper struct {
	cron  *cron.Cron
	holds shared.HoldSweeper
	clock clock.Clock
}

func NewSweeper(holds shared.HoldSweeper, clk clock.Clock, cfg config.Config) (*Sweeper, error) {
	s := &Sweeper{
		cron:  cron.New(),
		holds: holds,
		clock: clk,
	}
	spec := fmt.Sprintf("@every %s", cfg.Studio.SweepInterval)
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("failed to schedule hold sweep: %w", err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.holds.DeleteExpired(ctx, s.clock.Now())
	if err != nil {
		slog.Error("hold sweep failed", "error", err.Error())
		return
	}
	if removed > 0 {
		slog.Info("swept expired holds", "removed", removed)
	}
}
