package service

import (
	"context"
	"sync"
	"time"

	"smart_panel/internal/broadcast"
	"smart_panel/internal/models"
)

// ----------- Simulation constants -----------
const (
	BaseTempC  = 20.0 // °C at the start of every minute
	TempSpanC  = 0.8  // °C gained over one minute
	sensorLoop = time.Minute
)

// SimulateTemperature returns the reading for t: a sawtooth that climbs from
// BaseTempC to BaseTempC+TempSpanC once per minute.
func SimulateTemperature(t time.Time) float64 {
	into := time.Duration(t.UnixNano() % int64(sensorLoop))
	if into < 0 {
		into += sensorLoop
	}
	return BaseTempC + TempSpanC*into.Seconds()/sensorLoop.Seconds()
}

// SensorService publishes simulated temperature readings to subscribers.
type SensorService struct {
	hub *broadcast.Hub[models.TemperatureReading]
	now func() time.Time

	mu      sync.RWMutex
	latest  models.TemperatureReading
	hasRead bool
}

// NewSensorService returns a simulator with its own broadcast hub.
func NewSensorService(now func() time.Time) *SensorService {
	if now == nil {
		now = time.Now
	}
	return &SensorService{
		hub: broadcast.NewHub[models.TemperatureReading](),
		now: now,
	}
}

// Run samples once immediately, then on every tick until ctx is canceled.
// The hub is closed on return, which ends every subscription.
func (s *SensorService) Run(ctx context.Context, tick time.Duration) {
	defer s.hub.Close()

	s.sample()
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sample()
		}
	}
}

func (s *SensorService) sample() models.TemperatureReading {
	now := s.now()
	r := models.TemperatureReading{
		Temperature: SimulateTemperature(now),
		MeasuredAt:  now.UTC(),
	}
	s.mu.Lock()
	s.latest, s.hasRead = r, true
	s.mu.Unlock()

	s.hub.Publish(r)
	return r
}

// Latest returns the most recent reading; ok is false before the first sample.
func (s *SensorService) Latest() (models.TemperatureReading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.hasRead
}

func (s *SensorService) Subscribe(buffer int) (string, <-chan models.TemperatureReading, error) {
	return s.hub.Subscribe(buffer)
}

func (s *SensorService) Unsubscribe(id string) error {
	return s.hub.Unsubscribe(id)
}

// Stats reports hub delivery counters.
func (s *SensorService) Stats() broadcast.Stats {
	return s.hub.Stats()
}
