package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"smart_panel/internal/models"
	"smart_panel/internal/repository"
)

// fakeEventRepo records appends and answers List from its configured outputs.
type fakeEventRepo struct {
	mu        sync.Mutex
	appended  []models.PanelEvent
	appendErr error

	gotFrom time.Time
	gotTo   time.Time
	gotType string
	events  []models.PanelEvent
	listErr error
	calls   int
}

func (f *fakeEventRepo) Append(_ context.Context, e models.PanelEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.PanelEvent, error) {
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, f.listErr
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

// failingStateRepo rejects every write.
type failingStateRepo struct {
	repository.StateRepo
}

var errStoreDown = errors.New("store down")

func (failingStateRepo) Merge(context.Context, models.StatePatch) (models.PanelState, error) {
	return models.PanelState{}, errStoreDown
}

func (failingStateRepo) Update(context.Context, func(*models.PanelState) error) (models.PanelState, error) {
	return models.PanelState{}, errStoreDown
}

type fakeRecorder struct {
	starts, stops int
	err           error
}

func (r *fakeRecorder) Start(context.Context) error { r.starts++; return r.err }
func (r *fakeRecorder) Stop(context.Context) error  { r.stops++; return r.err }

var fixedNow = time.Date(2025, 5, 4, 6, 45, 0, 0, time.UTC)

func initialState() models.PanelState {
	return DefaultPanelState(fixedNow)
}

type harness struct {
	state    *repository.StateMemory
	events   *fakeEventRepo
	recorder *fakeRecorder
	panel    *PanelService
	alarm    *AlarmService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		state:    repository.NewStateMemory(initialState()),
		events:   &fakeEventRepo{},
		recorder: &fakeRecorder{},
	}
	j := newJournal(h.events, nil, func() time.Time { return fixedNow })
	h.panel = NewPanelService(h.state, j, h.recorder, nil)
	h.alarm = NewAlarmService(h.state, j)
	return h
}

func (h *harness) load(t *testing.T) models.PanelState {
	t.Helper()
	st, err := h.state.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return st
}

func intp(v int) *int { return &v }
