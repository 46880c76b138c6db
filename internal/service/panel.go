package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"smart_panel/internal/logger"
	"smart_panel/internal/models"
	"smart_panel/internal/repository"
)

type PanelService struct {
	stateRepo repository.StateRepo
	journal   *journal
	recorder  Recorder
	log       *logger.Logger

	// toggleMu keeps the flag flip and the recorder call in the same order.
	toggleMu sync.Mutex
}

func NewPanelService(stateRepo repository.StateRepo, j *journal, recorder Recorder, log *logger.Logger) *PanelService {
	if recorder == nil {
		recorder = NewLogRecorder(log)
	}
	return &PanelService{stateRepo: stateRepo, journal: j, recorder: recorder, log: log}
}

// DefaultPanelState is the state a fresh process starts with. The alarm is
// staged at the current wall-clock time and not committed.
func DefaultPanelState(now time.Time) models.PanelState {
	return models.PanelState{
		IsRecording: false,
		Brightness:  models.DefaultBrightness,
		Volume:      models.DefaultVolume,
		AlarmHour:   now.Hour(),
		AlarmMinute: now.Minute(),
		CurrentPage: models.PageCamera,
	}
}

// ReadState returns the current snapshot.
func (s *PanelService) ReadState(ctx context.Context) (models.PanelState, error) {
	return s.stateRepo.Load(ctx)
}

// WriteState validates every present field and merges the patch as one unit.
// Out-of-range values reject the whole request; nothing is clamped.
func (s *PanelService) WriteState(ctx context.Context, p models.StatePatch) (models.PanelState, error) {
	if err := validatePatch(p); err != nil {
		return models.PanelState{}, err
	}
	if p.Empty() {
		return s.stateRepo.Load(ctx)
	}

	st, err := s.stateRepo.Merge(ctx, p)
	if err != nil {
		return models.PanelState{}, fmt.Errorf("merge state: %w", err)
	}

	s.journal.record(ctx, models.EventStateUpdated, "Panel state updated", map[string]any{
		"fields": p.Fields(),
	})
	return st, nil
}

// Seed merges untyped startup values (the config's panel section) into the
// state. A mistyped or out-of-range value rejects the whole seed.
func (s *PanelService) Seed(ctx context.Context, fields map[string]any) (models.PanelState, error) {
	if len(fields) == 0 {
		return s.stateRepo.Load(ctx)
	}
	st, err := s.stateRepo.MergeFields(ctx, fields)
	if err != nil {
		return models.PanelState{}, fmt.Errorf("seed state: %w", err)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.journal.record(ctx, models.EventStateUpdated, "Panel state seeded", map[string]any{
		"fields": keys,
	})
	return st, nil
}

// ToggleRecording flips is_recording atomically and drives the recorder.
// A recorder failure is logged; the flag keeps its new value.
func (s *PanelService) ToggleRecording(ctx context.Context) (bool, error) {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	st, err := s.stateRepo.Update(ctx, func(st *models.PanelState) error {
		st.IsRecording = !st.IsRecording
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle recording: %w", err)
	}

	if st.IsRecording {
		if err := s.recorder.Start(ctx); err != nil && s.log != nil {
			s.log.Errorw("recorder_start_failed", "err", err)
		}
		s.journal.record(ctx, models.EventRecordingStarted, "Recording started", nil)
	} else {
		if err := s.recorder.Stop(ctx); err != nil && s.log != nil {
			s.log.Errorw("recorder_stop_failed", "err", err)
		}
		s.journal.record(ctx, models.EventRecordingStopped, "Recording stopped", nil)
	}
	return st.IsRecording, nil
}

func validatePatch(p models.StatePatch) error {
	var ve models.ValidationError
	checkRange(&ve, models.FieldBrightness, p.Brightness, models.MinLevel, models.MaxLevel)
	checkRange(&ve, models.FieldVolume, p.Volume, models.MinLevel, models.MaxLevel)
	checkRange(&ve, models.FieldAlarmHour, p.AlarmHour, 0, models.MaxHour)
	checkRange(&ve, models.FieldAlarmMinute, p.AlarmMinute, 0, models.MaxMinute)
	if p.CurrentPage != nil && !p.CurrentPage.Valid() {
		ve.Add(models.FieldCurrentPage, fmt.Sprintf("must be one of %s, %s, %s", models.PageCamera, models.PageAlarm, models.PageVideo))
	}
	if p.AlarmSetTime != nil {
		if _, _, err := ParseAlarmTime(*p.AlarmSetTime); err != nil {
			ve.Add(models.FieldAlarmSetTime, "must be HH:MM")
		}
	}
	return ve.Err()
}

func checkRange(ve *models.ValidationError, field string, v *int, lo, hi int) {
	if v == nil {
		return
	}
	if *v < lo || *v > hi {
		ve.Add(field, fmt.Sprintf("must be between %d and %d, got %d", lo, hi, *v))
	}
}
