package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// JSON keys of the panel fields.
const (
	FieldIsRecording  = "is_recording"
	FieldBrightness   = "brightness"
	FieldVolume       = "volume"
	FieldAlarmHour    = "alarm_hour"
	FieldAlarmMinute  = "alarm_minute"
	FieldAlarmSetTime = "alarm_set_time"
	FieldCurrentPage  = "current_page"
)

// StatePatch is a partial update. A nil slot leaves the field untouched.
type StatePatch struct {
	IsRecording  *bool
	Brightness   *int
	Volume       *int
	AlarmHour    *int
	AlarmMinute  *int
	AlarmSetTime *string
	CurrentPage  *Page
}

// Empty reports whether the patch carries no fields at all.
func (p StatePatch) Empty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the JSON names of the slots that are set, sorted.
func (p StatePatch) Fields() []string {
	var out []string
	if p.IsRecording != nil {
		out = append(out, FieldIsRecording)
	}
	if p.Brightness != nil {
		out = append(out, FieldBrightness)
	}
	if p.Volume != nil {
		out = append(out, FieldVolume)
	}
	if p.AlarmHour != nil {
		out = append(out, FieldAlarmHour)
	}
	if p.AlarmMinute != nil {
		out = append(out, FieldAlarmMinute)
	}
	if p.AlarmSetTime != nil {
		out = append(out, FieldAlarmSetTime)
	}
	if p.CurrentPage != nil {
		out = append(out, FieldCurrentPage)
	}
	sort.Strings(out)
	return out
}

// Apply overwrites the fields of st that are present in the patch.
func (p StatePatch) Apply(st *PanelState) {
	if p.IsRecording != nil {
		st.IsRecording = *p.IsRecording
	}
	if p.Brightness != nil {
		st.Brightness = *p.Brightness
	}
	if p.Volume != nil {
		st.Volume = *p.Volume
	}
	if p.AlarmHour != nil {
		st.AlarmHour = *p.AlarmHour
	}
	if p.AlarmMinute != nil {
		st.AlarmMinute = *p.AlarmMinute
	}
	if p.AlarmSetTime != nil {
		t := *p.AlarmSetTime
		st.AlarmSetTime = &t
	}
	if p.CurrentPage != nil {
		st.CurrentPage = *p.CurrentPage
	}
}

// DecodeStatePatch parses a client JSON object into a StatePatch.
//
// Keys that are not client-writable are dropped. A known key holding a value of
// the wrong JSON type is reported through a *ValidationError. A body that is
// not a JSON object fails with a plain decode error.
func DecodeStatePatch(body []byte) (StatePatch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return StatePatch{}, fmt.Errorf("decode state patch: %w", err)
	}
	if raw == nil {
		return StatePatch{}, fmt.Errorf("decode state patch: body must be a JSON object")
	}

	var (
		p  StatePatch
		ve ValidationError
	)
	for key, val := range raw {
		switch key {
		case FieldIsRecording:
			p.IsRecording = decodeSlot[bool](&ve, key, val, "must be a boolean")
		case FieldBrightness:
			p.Brightness = decodeSlot[int](&ve, key, val, "must be an integer")
		case FieldVolume:
			p.Volume = decodeSlot[int](&ve, key, val, "must be an integer")
		case FieldAlarmHour:
			p.AlarmHour = decodeSlot[int](&ve, key, val, "must be an integer")
		case FieldAlarmMinute:
			p.AlarmMinute = decodeSlot[int](&ve, key, val, "must be an integer")
		case FieldCurrentPage:
			p.CurrentPage = decodeSlot[Page](&ve, key, val, "must be a string")
		}
	}
	if err := ve.Err(); err != nil {
		sort.Slice(ve.Fields, func(i, j int) bool { return ve.Fields[i].Field < ve.Fields[j].Field })
		return StatePatch{}, err
	}
	return p, nil
}

var jsonNull = []byte("null")

func decodeSlot[T any](ve *ValidationError, key string, val json.RawMessage, reason string) *T {
	if bytes.Equal(bytes.TrimSpace(val), jsonNull) {
		ve.Add(key, reason)
		return nil
	}
	var v T
	if err := json.Unmarshal(val, &v); err != nil {
		ve.Add(key, reason)
		return nil
	}
	return &v
}
