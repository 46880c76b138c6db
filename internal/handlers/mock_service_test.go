package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"smart_panel/internal/broadcast"
	"smart_panel/internal/models"
	"smart_panel/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPanel struct {
	state     models.PanelState
	readErr   error
	writeErr  error
	toggleErr error

	lastPatch   models.StatePatch
	writeCalls  int
	toggleCalls int
}

func (m *mockPanel) ReadState(context.Context) (models.PanelState, error) {
	return m.state, m.readErr
}
func (m *mockPanel) WriteState(_ context.Context, p models.StatePatch) (models.PanelState, error) {
	m.writeCalls++
	m.lastPatch = p
	if m.writeErr != nil {
		return models.PanelState{}, m.writeErr
	}
	p.Apply(&m.state)
	return m.state, nil
}
func (m *mockPanel) Seed(context.Context, map[string]any) (models.PanelState, error) {
	return m.state, nil
}
func (m *mockPanel) ToggleRecording(context.Context) (bool, error) {
	m.toggleCalls++
	if m.toggleErr != nil {
		return false, m.toggleErr
	}
	m.state.IsRecording = !m.state.IsRecording
	return m.state.IsRecording, nil
}

type mockAlarm struct {
	setTime     string
	setErr      error
	adjState    models.PanelState
	adjErr      error
	lastHour    int
	lastMin     int
	lastHourPtr *int
	lastMinPtr  *int
	lastField   service.AlarmField
	lastDelta   int
	setCalls    int
}

func (m *mockAlarm) SetAlarm(_ context.Context, hour, minute int) (string, error) {
	m.setCalls++
	m.lastHour, m.lastMin = hour, minute
	return m.setTime, m.setErr
}
func (m *mockAlarm) CommitAlarm(_ context.Context, hour, minute *int) (string, error) {
	m.setCalls++
	m.lastHourPtr, m.lastMinPtr = hour, minute
	if hour != nil {
		m.lastHour = *hour
	}
	if minute != nil {
		m.lastMin = *minute
	}
	return m.setTime, m.setErr
}
func (m *mockAlarm) AdjustAlarm(_ context.Context, field service.AlarmField, delta int) (models.PanelState, error) {
	m.lastField, m.lastDelta = field, delta
	return m.adjState, m.adjErr
}

type mockEventLog struct {
	resp     []models.PanelEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.PanelEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// mockSensor is driven by the test through publish; it shares the real hub.
type mockSensor struct {
	hub *broadcast.Hub[models.TemperatureReading]

	mu      sync.Mutex
	latest  models.TemperatureReading
	hasRead bool
}

func newMockSensor() *mockSensor {
	return &mockSensor{hub: broadcast.NewHub[models.TemperatureReading]()}
}

func (m *mockSensor) Run(ctx context.Context, _ time.Duration) {
	<-ctx.Done()
	m.hub.Close()
}
func (m *mockSensor) Latest() (models.TemperatureReading, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest, m.hasRead
}
func (m *mockSensor) Subscribe(buffer int) (string, <-chan models.TemperatureReading, error) {
	return m.hub.Subscribe(buffer)
}
func (m *mockSensor) Unsubscribe(id string) error {
	return m.hub.Unsubscribe(id)
}

func (m *mockSensor) publish(r models.TemperatureReading) {
	m.mu.Lock()
	m.latest, m.hasRead = r, true
	m.mu.Unlock()
	m.hub.Publish(r)
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	h := NewHandler(s, nil, opts...)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
