package service

import (
	"context"
	"time"

	"smart_panel/internal/logger"
	"smart_panel/internal/models"
	"smart_panel/internal/repository"

	"github.com/google/uuid"
)

// journal appends panel events on a best-effort basis. The in-memory state is
// the source of truth, so a failed append is logged and never undoes a change.
type journal struct {
	events repository.EventRepo
	log    *logger.Logger
	now    func() time.Time
}

func newJournal(events repository.EventRepo, log *logger.Logger, now func() time.Time) *journal {
	if now == nil {
		now = time.Now
	}
	return &journal{events: events, log: log, now: now}
}

func (j *journal) record(ctx context.Context, typ, description string, meta map[string]any) {
	if j == nil || j.events == nil {
		return
	}
	ev := models.PanelEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  j.now().UTC(),
		Type:        typ,
		Description: description,
	}
	if meta != nil {
		ev.Metadata = meta
	}
	// detach from request cancellation so a closed client does not lose the entry
	if err := j.events.Append(context.WithoutCancel(ctx), ev); err != nil && j.log != nil {
		j.log.Warnw("event_append_failed", "type", typ, "err", err)
	}
}
