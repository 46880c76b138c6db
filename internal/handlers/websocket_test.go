package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"smart_panel/internal/models"
	"smart_panel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialWS(t *testing.T, s *service.Service) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readReading(t *testing.T, conn *websocket.Conn) models.TemperatureReading {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != msgTemperatureUpdate {
		t.Fatalf("type = %q, want %q", env.Type, msgTemperatureUpdate)
	}
	var r models.TemperatureReading
	if err := json.Unmarshal(env.Data, &r); err != nil {
		t.Fatalf("unmarshal reading: %v", err)
	}
	return r
}

// waitSubscribers blocks until the hub sees n subscribers; Subscribe happens
// server-side after the dial returns.
func waitSubscribers(t *testing.T, m *mockSensor, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for m.hub.Stats().Subscribers != n {
		if time.Now().After(deadline) {
			t.Fatalf("subscribers = %d, want %d", m.hub.Stats().Subscribers, n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWebSocket_InitialReadingThenUpdates(t *testing.T) {
	sensor := newMockSensor()
	sensor.publish(models.TemperatureReading{Temperature: 20.1})

	conn := dialWS(t, &service.Service{Sensor: sensor})

	if got := readReading(t, conn); got.Temperature != 20.1 {
		t.Fatalf("initial temperature = %v", got.Temperature)
	}

	waitSubscribers(t, sensor, 1)
	sensor.publish(models.TemperatureReading{Temperature: 20.5})
	if got := readReading(t, conn); got.Temperature != 20.5 {
		t.Fatalf("pushed temperature = %v", got.Temperature)
	}
}

func TestWebSocket_NoInitialWithoutReading(t *testing.T) {
	sensor := newMockSensor()
	conn := dialWS(t, &service.Service{Sensor: sensor})

	waitSubscribers(t, sensor, 1)
	sensor.publish(models.TemperatureReading{Temperature: 20.3})
	if got := readReading(t, conn); got.Temperature != 20.3 {
		t.Fatalf("first message should be the published reading, got %v", got.Temperature)
	}
}

func TestWebSocket_ClosesWhenSensorStops(t *testing.T) {
	sensor := newMockSensor()
	conn := dialWS(t, &service.Service{Sensor: sensor})
	waitSubscribers(t, sensor, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sensor.Run(ctx, time.Second)

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Fatalf("expected going-away close, got %v", err)
	}
}

func TestWebSocket_UnsubscribesOnDisconnect(t *testing.T) {
	sensor := newMockSensor()
	conn := dialWS(t, &service.Service{Sensor: sensor})
	waitSubscribers(t, sensor, 1)

	_ = conn.Close()
	waitSubscribers(t, sensor, 0)
}

func TestWebSocket_StoppedSensorRejectsUpgrade(t *testing.T) {
	sensor := newMockSensor()
	sensor.hub.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", NewHandler(&service.Service{Sensor: sensor}, nil).wsConnect)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestWebSocket_AllowedOrigins(t *testing.T) {
	sensor := newMockSensor()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(&service.Service{Sensor: sensor}, nil, WithAllowedOrigins([]string{"http://Panel.local:3000/"}))
	r.GET("/ws", h.wsConnect)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}

	cases := []struct {
		origin string
		ok     bool
	}{
		{"http://panel.local:3000", true},
		{"", true},
		{"http://evil.example", false},
	}
	for _, tc := range cases {
		hdr := http.Header{}
		if tc.origin != "" {
			hdr.Set("Origin", tc.origin)
		}
		conn, resp, err := dialer.Dial(u.String(), hdr)
		if tc.ok {
			if err != nil {
				t.Fatalf("origin %q: dial error %v", tc.origin, err)
			}
			_ = conn.Close()
			continue
		}
		if err == nil {
			_ = conn.Close()
			t.Fatalf("origin %q should be rejected", tc.origin)
		}
		if resp == nil || resp.StatusCode != http.StatusForbidden {
			t.Fatalf("origin %q: want 403, got %v", tc.origin, resp)
		}
	}
}

func TestNewUpgrader_WildcardAcceptsAny(t *testing.T) {
	up := newUpgrader([]string{"http://a.example", "*"})
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "http://b.example")
	if !up.CheckOrigin(req) {
		t.Fatal("wildcard should accept any origin")
	}
}
