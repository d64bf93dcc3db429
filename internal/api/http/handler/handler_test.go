package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aw-dashboard/dashboard-api/internal/activity"
	"github.com/aw-dashboard/dashboard-api/internal/activitywatch"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testBucketsJSON = `{
  "aw-watcher-window_linux-workstation": {"id": "aw-watcher-window_linux-workstation", "type": "currentwindow", "hostname": "linux-workstation", "last_updated": "2024-01-02T09:30:00+00:00"},
  "aw-watcher-afk_linux-workstation": {"id": "aw-watcher-afk_linux-workstation", "type": "afkstatus", "hostname": "linux-workstation", "last_updated": "2024-01-02T09:30:00+00:00"},
  "aw-watcher-window_workstation": {"id": "aw-watcher-window_workstation", "type": "currentwindow", "hostname": "workstation", "last_updated": "2024-01-02T08:00:00+00:00"}
}`

// fakeActivityWatch serves the ActivityWatch endpoints used by the service.
// events maps bucket id to a list of (app, duration) pairs.
type fakeActivityWatch struct {
	events map[string][][2]any
	fail   bool
}

func (f *fakeActivityWatch) start(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/0/buckets/", func(w http.ResponseWriter, r *http.Request) {
		if f.fail {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(testBucketsJSON))
	})
	mux.HandleFunc("GET /api/0/buckets/{id}/events", func(w http.ResponseWriter, r *http.Request) {
		if f.fail {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		id := r.PathValue("id")
		raw, ok := f.events[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprintf(w, `{"message": "There's no bucket named %s"}`, id)
			return
		}

		events := make([]map[string]any, len(raw))
		for i, e := range raw {
			events[i] = map[string]any{
				"id":        i + 1,
				"timestamp": time.Date(2024, 1, 1, 10, 0, i, 0, time.UTC).Format(time.RFC3339),
				"duration":  e[1],
				"data":      map[string]any{"app": e[0], "title": fmt.Sprintf("%s window", e[0])},
			}
		}
		_ = json.NewEncoder(w).Encode(events)
	})
	mux.HandleFunc("GET /api/0/info", func(w http.ResponseWriter, r *http.Request) {
		if f.fail {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"hostname": "linux-workstation", "version": "v0.12.0", "testing": false}`))
	})

	s := httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func newTestService(t *testing.T, f *fakeActivityWatch) *activity.Service {
	s := f.start(t)
	return activity.NewService(activitywatch.NewClient(s.URL, 2*time.Second), nil, 2)
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body["detail"]
}

func manyEvents(app string, n int) [][2]any {
	out := make([][2]any, n)
	for i := range out {
		out[i] = [2]any{app, 1.0}
	}
	return out
}
