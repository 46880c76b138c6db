package service

import (
	"context"

	"smart_panel/internal/logger"
)

// Recorder is the camera/recording pipeline driven by ToggleRecording.
type Recorder interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// LogRecorder stands in for a capture pipeline and only logs transitions.
type LogRecorder struct {
	log *logger.Logger
}

func NewLogRecorder(log *logger.Logger) *LogRecorder {
	return &LogRecorder{log: log}
}

func (r *LogRecorder) Start(_ context.Context) error {
	if r.log != nil {
		r.log.Infow("recorder_started")
	}
	return nil
}

func (r *LogRecorder) Stop(_ context.Context) error {
	if r.log != nil {
		r.log.Infow("recorder_stopped")
	}
	return nil
}
