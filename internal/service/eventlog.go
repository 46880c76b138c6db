package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"smart_panel/internal/models"
	"smart_panel/internal/repository"
)

// LogFilter narrows the event log by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "" or one of the models.Event* types
}

var ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// List returns the matching events, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.PanelEvent, error) {
	from, to := utcOrZero(f.From), utcOrZero(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, ErrInvalidTimeRange
	}
	return s.eventRepo.List(ctx, from, to, strings.ToUpper(strings.TrimSpace(f.Type)))
}

// utcOrZero normalizes non-zero time to UTC, preserving zero values.
func utcOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
