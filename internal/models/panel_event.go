package models

import "time"

// Event types written to the panel log.
const (
	EventRecordingStarted = "RECORDING_STARTED"
	EventRecordingStopped = "RECORDING_STOPPED"
	EventStateUpdated     = "STATE_UPDATED"
	EventAlarmSet         = "ALARM_SET"
	EventAlarmAdjusted    = "ALARM_ADJUSTED"
)

// PanelEvent is a single log entry.
type PanelEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // RECORDING_STARTED | RECORDING_STOPPED | STATE_UPDATED | ALARM_SET | ALARM_ADJUSTED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

// TemperatureReading is one simulated sensor sample.
type TemperatureReading struct {
	Temperature float64   `json:"temperature"` // °C
	MeasuredAt  time.Time `json:"measured_at"`
}
