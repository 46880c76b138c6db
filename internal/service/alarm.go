package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"smart_panel/internal/models"
	"smart_panel/internal/repository"
)

// AlarmField selects which half of the alarm time AdjustAlarm moves.
type AlarmField string

const (
	AlarmFieldHour   AlarmField = "hour"
	AlarmFieldMinute AlarmField = "minute"
)

// modulus returns the wraparound base for the field, or 0 if unknown.
func (f AlarmField) modulus() int {
	switch f {
	case AlarmFieldHour:
		return models.HoursDay
	case AlarmFieldMinute:
		return models.MinsHour
	}
	return 0
}

type AlarmService struct {
	stateRepo repository.StateRepo
	journal   *journal
}

func NewAlarmService(stateRepo repository.StateRepo, j *journal) *AlarmService {
	return &AlarmService{stateRepo: stateRepo, journal: j}
}

// SetAlarm commits hour, minute and the derived HH:MM string in one update.
// Invalid input leaves the state untouched.
func (s *AlarmService) SetAlarm(ctx context.Context, hour, minute int) (string, error) {
	return s.CommitAlarm(ctx, &hour, &minute)
}

// CommitAlarm is SetAlarm with optional parts: a nil hour or minute commits
// the currently staged value. Reading the staged value and committing happen
// under the same store lock.
func (s *AlarmService) CommitAlarm(ctx context.Context, hour, minute *int) (string, error) {
	var ve models.ValidationError
	if hour != nil && (*hour < 0 || *hour > models.MaxHour) {
		ve.Add("hour", fmt.Sprintf("must be between 0 and %d, got %d", models.MaxHour, *hour))
	}
	if minute != nil && (*minute < 0 || *minute > models.MaxMinute) {
		ve.Add("minute", fmt.Sprintf("must be between 0 and %d, got %d", models.MaxMinute, *minute))
	}
	if err := ve.Err(); err != nil {
		return "", err
	}

	var setTime string
	st, err := s.stateRepo.Update(ctx, func(st *models.PanelState) error {
		if hour != nil {
			st.AlarmHour = *hour
		}
		if minute != nil {
			st.AlarmMinute = *minute
		}
		setTime = models.FormatAlarmTime(st.AlarmHour, st.AlarmMinute)
		st.AlarmSetTime = &setTime
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("commit alarm: %w", err)
	}

	s.journal.record(ctx, models.EventAlarmSet, "Alarm set to "+setTime, map[string]any{
		"hour":   st.AlarmHour,
		"minute": st.AlarmMinute,
	})
	return setTime, nil
}

// AdjustAlarm moves the staged hour or minute by delta with wraparound.
// alarm_set_time is left as is; only SetAlarm commits.
func (s *AlarmService) AdjustAlarm(ctx context.Context, field AlarmField, delta int) (models.PanelState, error) {
	mod := field.modulus()
	if mod == 0 {
		var ve models.ValidationError
		ve.Add("field", fmt.Sprintf("must be %q or %q", AlarmFieldHour, AlarmFieldMinute))
		return models.PanelState{}, &ve
	}

	var from, to int
	st, err := s.stateRepo.Update(ctx, func(st *models.PanelState) error {
		if field == AlarmFieldHour {
			from = st.AlarmHour
			st.AlarmHour = wrapAround(st.AlarmHour, delta, mod)
			to = st.AlarmHour
		} else {
			from = st.AlarmMinute
			st.AlarmMinute = wrapAround(st.AlarmMinute, delta, mod)
			to = st.AlarmMinute
		}
		return nil
	})
	if err != nil {
		return models.PanelState{}, fmt.Errorf("adjust alarm %s: %w", field, err)
	}

	s.journal.record(ctx, models.EventAlarmAdjusted, fmt.Sprintf("Alarm %s adjusted", field), map[string]any{
		"field": string(field),
		"delta": delta,
		"from":  from,
		"to":    to,
	})
	return st, nil
}

// wrapAround returns (v + delta) mod m in [0, m) for any delta.
func wrapAround(v, delta, m int) int {
	r := (v%m + delta%m) % m
	if r < 0 {
		r += m
	}
	return r
}

// ParseAlarmTime parses a zero-padded HH:MM string.
func ParseAlarmTime(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || !twoDigits(hh) || !twoDigits(mm) {
		return 0, 0, fmt.Errorf("alarm time %q: want HH:MM", s)
	}
	if hour, err = strconv.Atoi(hh); err != nil || hour < 0 || hour > models.MaxHour {
		return 0, 0, fmt.Errorf("alarm time %q: bad hour", s)
	}
	if minute, err = strconv.Atoi(mm); err != nil || minute < 0 || minute > models.MaxMinute {
		return 0, 0, fmt.Errorf("alarm time %q: bad minute", s)
	}
	return hour, minute, nil
}

func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}
