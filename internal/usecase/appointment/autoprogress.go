package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/neal92/ServiceBooking-sub000/internal/domain/appointment"
)

// Appointments may move to in-progress slightly before their start
// time, so a booking at 14:00 is picked up from 13:55.
const earlyStartWindow = 5 * time.Minute

// AutoProgress is one sweep of the progression monitor: promote every
// confirmed appointment of the current day whose start time has
// arrived. Promotions go through the same UpdateStatus path as manual
// transitions, with the system actor.
type AutoProgress struct {
	repo   domain.Repository
	status *UpdateStatus
	loc    *time.Location
	log    zerolog.Logger
}

func NewAutoProgress(
	repo domain.Repository,
	status *UpdateStatus,
	loc *time.Location,
	log zerolog.Logger,
) *AutoProgress {
	return &AutoProgress{
		repo:   repo,
		status: status,
		loc:    loc,
		log:    log,
	}
}

// Execute fetches the appointment list once and returns how many
// appointments were promoted. A second run right after promotes
// nothing: the promoted rows are no longer confirmed.
func (uc *AutoProgress) Execute(
	ctx context.Context,
	now time.Time,
) (int, error) {

	now = now.In(uc.loc)

	aps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return 0, err
	}

	today := now.Format("2006-01-02")
	promoted := 0

	for i := range aps {
		ap := &aps[i]

		if domain.Status(ap.Status) != domain.StatusConfirmed {
			continue
		}
		if domain.NormalizeDate(ap.Date) != today {
			continue
		}

		start, err := domain.StartsAt(ap.Date, ap.Time, uc.loc)
		if err != nil {
			uc.log.Warn().Uint("appointment_id", ap.ID).Str("time", ap.Time).
				Msg("skipping appointment with unparseable slot")
			continue
		}

		if now.Before(start.Add(-earlyStartWindow)) {
			continue
		}

		if _, err := uc.status.Execute(
			ctx,
			ap.ID,
			domain.StatusInProgress,
			domain.ActorSystem,
			"",
			nil,
		); err != nil {
			uc.log.Error().Err(err).Uint("appointment_id", ap.ID).
				Msg("auto progression failed")
			continue
		}

		promoted++
	}

	return promoted, nil
}
