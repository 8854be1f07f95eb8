package room

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/room"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/timezone"
)

// SetCleanTime stamps lastCleanedAt on every room, e.g. after a full floor sweep.
type SetCleanTime struct {
	repo     domain.Repository
	audit    audit.Recorder
	timezone string
}

func NewSetCleanTime(repo domain.Repository, audit audit.Recorder, tz string) *SetCleanTime {
	return &SetCleanTime{repo: repo, audit: audit, timezone: tz}
}

// Execute uses the current hotel time when at is nil.
func (uc *SetCleanTime) Execute(ctx context.Context, actor auth.Identity, at *time.Time) (int64, error) {
	stamp := timezone.NowIn(uc.timezone)
	if at != nil {
		stamp = *at
	}

	var updated int64
	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		var err error
		updated, err = repo.SetLastCleanedAll(ctx, stamp)
		return err
	})
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "rooms_clean_time_set",
		Entity:   "room",
		Metadata: map[string]any{"at": stamp, "rooms": updated},
	})

	return updated, nil
}
