package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"

	"smart_panel/internal/models"
)

var (
	// ErrFieldType is returned when a merge assigns a value the field cannot hold.
	ErrFieldType = errors.New("incompatible field type")
	// ErrFieldRange is returned when an untyped merge assigns a number outside the field's bounds.
	ErrFieldRange = errors.New("field value out of range")
)

// StateMemory keeps the panel state in process memory. It is never persisted.
type StateMemory struct {
	mu    sync.RWMutex
	state models.PanelState
}

// Ensure implementation of StateRepo interface at compile time.
var _ StateRepo = (*StateMemory)(nil)

func NewStateMemory(initial models.PanelState) *StateMemory {
	return &StateMemory{state: initial.Clone()}
}

// Load returns a copy of the current state.
func (r *StateMemory) Load(_ context.Context) (models.PanelState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone(), nil
}

// Merge overwrites every field present in p and returns the resulting state.
func (r *StateMemory) Merge(ctx context.Context, p models.StatePatch) (models.PanelState, error) {
	return r.Update(ctx, func(st *models.PanelState) error {
		p.Apply(st)
		return nil
	})
}

// Update runs fn on a copy of the state under the write lock. The copy replaces
// the stored state only when fn returns nil.
func (r *StateMemory) Update(_ context.Context, fn func(st *models.PanelState) error) (models.PanelState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.state.Clone()
	if err := fn(&next); err != nil {
		return r.state.Clone(), err
	}
	r.state = next
	return next.Clone(), nil
}

// MergeFields is the untyped form of Merge, used for maps that do not come
// through the typed patch decoder (config seeds). Unknown keys are ignored. If
// any known key holds a value of an incompatible type or outside its bounds,
// nothing is written and the error wraps ErrFieldType or ErrFieldRange.
func (r *StateMemory) MergeFields(ctx context.Context, fields map[string]any) (models.PanelState, error) {
	return r.Update(ctx, func(st *models.PanelState) error {
		for key, v := range fields {
			if err := assignField(st, key, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func assignField(st *models.PanelState, key string, v any) error {
	switch key {
	case models.FieldIsRecording:
		b, ok := v.(bool)
		if !ok {
			return typeError(key, "bool", v)
		}
		st.IsRecording = b
	case models.FieldBrightness, models.FieldVolume, models.FieldAlarmHour, models.FieldAlarmMinute:
		n, ok := coerceInt(v)
		if !ok {
			return typeError(key, "int", v)
		}
		if lo, hi := fieldBounds(key); n < lo || n > hi {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrFieldRange, key, lo, hi, n)
		}
		switch key {
		case models.FieldBrightness:
			st.Brightness = n
		case models.FieldVolume:
			st.Volume = n
		case models.FieldAlarmHour:
			st.AlarmHour = n
		default:
			st.AlarmMinute = n
		}
	case models.FieldAlarmSetTime:
		switch t := v.(type) {
		case nil:
			st.AlarmSetTime = nil
		case string:
			st.AlarmSetTime = &t
		case *string:
			if t == nil {
				st.AlarmSetTime = nil
			} else {
				s := *t
				st.AlarmSetTime = &s
			}
		default:
			return typeError(key, "string", v)
		}
	case models.FieldCurrentPage:
		var p models.Page
		switch t := v.(type) {
		case string:
			p = models.Page(t)
		case models.Page:
			p = t
		default:
			return typeError(key, "page", v)
		}
		if !p.Valid() {
			return fmt.Errorf("%w: %s has no page %q", ErrFieldType, key, p)
		}
		st.CurrentPage = p
	}
	return nil
}

func typeError(key, want string, got any) error {
	return fmt.Errorf("%w: %s expects %s, got %T", ErrFieldType, key, want, got)
}

func fieldBounds(key string) (lo, hi int) {
	switch key {
	case models.FieldAlarmHour:
		return 0, models.MaxHour
	case models.FieldAlarmMinute:
		return 0, models.MaxMinute
	}
	return models.MinLevel, models.MaxLevel
}

// coerceInt accepts Go integer kinds, integral floats and json.Number. Every
// source is held to the int32 range so no kind wraps on conversion.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return fromInt64(int64(n))
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return fromInt64(n)
	case uint:
		return fromUint64(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return fromUint64(uint64(n))
	case uint64:
		return fromUint64(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return fromInt64(i)
	}
	return 0, false
}

func fromInt64(i int64) (int, bool) {
	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0, false
	}
	return int(i), true
}

func fromUint64(u uint64) (int, bool) {
	if u > math.MaxInt32 {
		return 0, false
	}
	return int(u), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
