package activity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	s, _ := newTestService(t)
	h := NewHandler(s)

	r := chi.NewRouter()
	r.Mount("/activity", Routes(h))
	r.Mount("/admin", AdminRoutes(h))
	return r
}

func TestTrackHandler(t *testing.T) {
	srv := newTestRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"page view", `{"action":"page_view","page_path":"/chapters/6"}`, http.StatusCreated},
		{"bad json", `{`, http.StatusBadRequest},
		{"bad action", `{"action":"nap","page_path":"/chapters/6"}`, http.StatusBadRequest},
		{"forged completion", `{"action":"quiz_complete","page_path":"/chapters/6","metadata":{"accuracy":100}}`, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/activity/track", strings.NewReader(tt.body))
			req.Header.Set(NetIDHeader, "ab1")
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestAdminHandlers(t *testing.T) {
	srv := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/activity/track", strings.NewReader(`{"action":"page_view","page_path":"/chapters/6"}`))
	req.Header.Set(NetIDHeader, "ab1")
	srv.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/activity?limit=5", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("activity status = %d", rec.Code)
	}
	var report ActivityReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if len(report.RecentActivity) != 1 || report.RecentActivity[0].NetID != "ab1" {
		t.Errorf("report = %+v", report)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	var stats StatsReport
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalStudents != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
