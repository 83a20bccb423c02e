package queries

import (
	"context"
	"time"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"
)

var (
	ErrUnknownService = errs.New("unknown service")
	ErrInvalidDay     = errs.New("invalid day")
	ErrStoreFailure   = errs.New("store operation failed")
)

// SlotView is one bookable start for a service on a day.
type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityQueries interface {
	// SlotsFor lists free starts for a service on a day ("2006-01-02" in the
	// studio timezone). A closed day yields an empty list, not an error.
	SlotsFor(ctx context.Context, serviceID, day string) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	cat     *catalog.Catalog
	cal     *schedule.Calendar
	checker *shared.ConflictChecker
	reads   shared.SlotReads
	step    time.Duration
}

func NewAvailabilityQueries(
	cat *catalog.Catalog,
	cal *schedule.Calendar,
	checker *shared.ConflictChecker,
	reads shared.SlotReads,
	cfg config.Config,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		cat:     cat,
		cal:     cal,
		checker: checker,
		reads:   reads,
		step:    cfg.Studio.SlotStep,
	}
}

func (q *availabilityQueriesImpl) SlotsFor(ctx context.Context, serviceID, day string) ([]SlotView, error) {
	svc, ok := q.cat.Service(serviceID)
	if !ok {
		return nil, ErrUnknownService
	}

	date, err := time.ParseInLocation("2006-01-02", day, q.cal.Location())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDay)
	}

	window, open := q.cal.WindowFor(date)
	if !open {
		return []SlotView{}, nil
	}

	slots := []SlotView{}
	// Walk the window in fixed steps; a start survives when the service end
	// fits before close and nothing occupies the padded interval.
	for cursor := window.Open(); !cursor.Add(svc.Duration).After(window.Close()); cursor = cursor.Add(q.step) {
		ival, err := schedule.NewInterval(cursor, svc.Duration, svc.Buffer)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}

		conflict, err := q.checker.Overlaps(ctx, q.reads, svc.ID, ival)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		if !conflict {
			slots = append(slots, SlotView{Start: cursor, End: ival.End()})
		}
	}
	return slots, nil
}
