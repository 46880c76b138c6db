package models

import "fmt"

// Page is the panel screen currently shown by the presentation client.
type Page string

const (
	PageCamera Page = "camera"
	PageAlarm  Page = "alarm"
	PageVideo  Page = "video"
)

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool {
	switch p {
	case PageCamera, PageAlarm, PageVideo:
		return true
	}
	return false
}

// Value bounds for the numeric panel fields.
const (
	MinLevel  = 0
	MaxLevel  = 100
	HoursDay  = 24
	MinsHour  = 60
	MaxHour   = HoursDay - 1
	MaxMinute = MinsHour - 1

	DefaultBrightness = 50
	DefaultVolume     = 50
)

// PanelState is the single shared snapshot of the panel.
type PanelState struct {
	IsRecording  bool    `json:"is_recording"`
	Brightness   int     `json:"brightness"`     // 0..100
	Volume       int     `json:"volume"`         // 0..100
	AlarmHour    int     `json:"alarm_hour"`     // 0..23
	AlarmMinute  int     `json:"alarm_minute"`   // 0..59
	AlarmSetTime *string `json:"alarm_set_time"` // "HH:MM", nil until the first commit
	CurrentPage  Page    `json:"current_page"`
}

// Clone returns a copy that shares no pointers with s.
func (s PanelState) Clone() PanelState {
	out := s
	if s.AlarmSetTime != nil {
		t := *s.AlarmSetTime
		out.AlarmSetTime = &t
	}
	return out
}

// FormatAlarmTime renders a zero-padded HH:MM string.
func FormatAlarmTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
