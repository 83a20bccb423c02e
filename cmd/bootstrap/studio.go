package bootstrap

import (
	"time"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/pricing"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// StudioModule wires the standing offering: the catalog, the calendar in the
// studio timezone and the quoter.
var StudioModule = fx.Module("studio",
	fx.Provide(
		catalog.Default,
		NewCalendar,
		pricing.NewQuoter,
	),
)

func NewCalendar(cfg config.Config, cat *catalog.Catalog) (*schedule.Calendar, error) {
	loc, err := time.LoadLocation(cfg.Studio.Timezone)
	if err != nil {
		return nil, err
	}
	return schedule.NewCalendar(cat.Hours(), loc, cfg.Studio.SameDayCutoff), nil
}
