package service

import (
	"context"
	"time"

	"smart_panel/internal/logger"
	"smart_panel/internal/models"
	"smart_panel/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Panel exposes the shared panel state: full reads, validated partial writes,
// the recording toggle and startup seeding.
type Panel interface {
	ReadState(ctx context.Context) (models.PanelState, error)
	WriteState(ctx context.Context, p models.StatePatch) (models.PanelState, error)
	ToggleRecording(ctx context.Context) (bool, error)
	Seed(ctx context.Context, fields map[string]any) (models.PanelState, error)
}

// Alarm stages (AdjustAlarm) and commits (SetAlarm) the alarm time.
type Alarm interface {
	SetAlarm(ctx context.Context, hour, minute int) (string, error)
	CommitAlarm(ctx context.Context, hour, minute *int) (string, error)
	AdjustAlarm(ctx context.Context, field AlarmField, delta int) (models.PanelState, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.PanelEvent, error)
}

// Sensor runs the temperature simulation and lets clients subscribe to readings.
// Stop via context cancellation in main() for graceful shutdown.
type Sensor interface {
	Run(ctx context.Context, tick time.Duration)
	Latest() (models.TemperatureReading, bool)
	Subscribe(buffer int) (string, <-chan models.TemperatureReading, error)
	Unsubscribe(id string) error
}

// Service aggregates all sub-services.
type Service struct {
	Panel
	Alarm
	EventLog
	Sensor
	Authorization
}

// Options carries the non-repository collaborators of the services.
type Options struct {
	Log      *logger.Logger
	Recorder Recorder
	Auth     AuthConfig
	Now      func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Recorder == nil {
		o.Recorder = NewLogRecorder(o.Log)
	}
	return o
}

// NewService wires the repository layer into the concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	opts = opts.withDefaults()
	journal := newJournal(repos.EventRepo, opts.Log, opts.Now)
	return &Service{
		Panel:         NewPanelService(repos.StateRepo, journal, opts.Recorder, opts.Log),
		Alarm:         NewAlarmService(repos.StateRepo, journal),
		EventLog:      NewEventLogService(repos.EventRepo),
		Sensor:        NewSensorService(opts.Now),
		Authorization: NewAuthService(repos.Auth, opts.Auth),
	}
}
