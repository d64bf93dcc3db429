package activitywatch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

type Bucket struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Hostname    string `json:"hostname"`
	LastUpdated string `json:"last_updated"`
}

type Event struct {
	ID        int64          `json:"id"`
	Timestamp string         `json:"timestamp"`
	Duration  float64        `json:"duration"`
	Data      map[string]any `json:"data"`
}

// Server is an in-process stand-in for an ActivityWatch server.
type Server struct {
	mu      sync.RWMutex
	buckets []Bucket
	events  map[string][]Event
	down    bool

	httpServer *httptest.Server
}

func StartActivityWatch() *Server {
	s := &Server{events: make(map[string][]Event)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/0/buckets/", s.handleBuckets)
	mux.HandleFunc("GET /api/0/buckets/{id}/events", s.handleEvents)
	mux.HandleFunc("GET /api/0/info", s.handleInfo)
	s.httpServer = httptest.NewServer(mux)

	return s
}

func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Terminate() {
	s.httpServer.Close()
}

func (s *Server) AddBucket(b Bucket, events ...Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets = append(s.buckets, b)
	s.events[b.ID] = events
}

// SetDown makes every endpoint answer 503.
func (s *Server) SetDown(down bool) {
	s.mu.Lock()
	s.down = down
	s.mu.Unlock()
}

func AppEvent(id int64, at time.Time, duration float64, app, title string) Event {
	return Event{
		ID:        id,
		Timestamp: at.UTC().Format(time.RFC3339Nano),
		Duration:  duration,
		Data:      map[string]any{"app": app, "title": title},
	}
}

func (s *Server) unavailable(w http.ResponseWriter) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.down {
		http.Error(w, "aw-server is starting", http.StatusServiceUnavailable)
		return true
	}
	return false
}

func (s *Server) handleBuckets(w http.ResponseWriter, r *http.Request) {
	if s.unavailable(w) {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Written by hand to keep the listing order stable.
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte("{"))
	for i, b := range s.buckets {
		if i > 0 {
			_, _ = w.Write([]byte(","))
		}
		key, _ := json.Marshal(b.ID)
		value, _ := json.Marshal(b)
		_, _ = fmt.Fprintf(w, "%s:%s", key, value)
	}
	_, _ = w.Write([]byte("}"))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.unavailable(w) {
		return
	}

	id := r.PathValue("id")
	start, errStart := time.Parse(time.RFC3339Nano, r.URL.Query().Get("start"))
	end, errEnd := time.Parse(time.RFC3339Nano, r.URL.Query().Get("end"))
	if errStart != nil || errEnd != nil {
		http.Error(w, "invalid start or end", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	events, ok := s.events[id]
	s.mu.RUnlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprintf(w, `{"message": "There's no bucket named %s"}`, id)
		return
	}

	inWindow := make([]Event, 0, len(events))
	for _, e := range events {
		ts, err := time.Parse(time.RFC3339Nano, e.Timestamp)
		if err != nil || ts.Before(start) || ts.After(end) {
			continue
		}
		inWindow = append(inWindow, e)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(inWindow)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if s.unavailable(w) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"hostname": "systemtest", "version": "v0.12.3", "testing": true, "device_id": "systemtest"}`))
}
