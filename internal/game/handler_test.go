package game

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/statbook-lambda/internal/activity"
	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

func newServer(t *testing.T) (http.Handler, *harness) {
	t.Helper()
	h := newHarness(t, nil)
	r := chi.NewRouter()
	Mount(r, NewHandler(h.svc))
	return r, h
}

func do(t *testing.T, srv http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set(activity.NetIDHeader, "ab1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHandlerSessionFlow(t *testing.T) {
	srv, _ := newServer(t)

	rec := do(t, srv, http.MethodPost, "/games/identifier-variables/sessions", `{"mode":"quick"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start = %d: %s", rec.Code, rec.Body)
	}
	var view SessionView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatal(err)
	}
	if view.Question == nil || view.Session.Total != 2 {
		t.Fatalf("start view = %+v", view)
	}
	if strings.Contains(rec.Body.String(), `"answer"`) {
		t.Error("answer leaked in session view")
	}

	base := "/sessions/" + view.ID.String()

	rec = do(t, srv, http.MethodGet, base+"/summary", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("summary before end = %d", rec.Code)
	}

	rec = do(t, srv, http.MethodPost, base+"/select", `{"value":"Patient_ID"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("select = %d", rec.Code)
	}

	rec = do(t, srv, http.MethodPost, base+"/submit", "")
	var resp ActionResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if !resp.Accepted || resp.View.Session.State != quiz.StateShowingFeedback || !resp.View.Session.Feedback.Correct {
		t.Fatalf("submit = %+v", resp)
	}

	rec = do(t, srv, http.MethodPost, base+"/submit", "")
	resp = ActionResponse{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if rec.Code != http.StatusOK || resp.Accepted {
		t.Errorf("second submit = %d accepted=%v", rec.Code, resp.Accepted)
	}

	rec = do(t, srv, http.MethodGet, base+"/hint", "")
	if rec.Code != http.StatusOK {
		t.Errorf("hint = %d", rec.Code)
	}

	if rec = do(t, srv, http.MethodDelete, base, ""); rec.Code != http.StatusNoContent {
		t.Errorf("end = %d", rec.Code)
	}
	if rec = do(t, srv, http.MethodGet, base, ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after end = %d", rec.Code)
	}
}

func TestHandlerErrors(t *testing.T) {
	srv, _ := newServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"unknown game", http.MethodPost, "/games/nope/sessions", "", http.StatusNotFound},
		{"bad mode", http.MethodPost, "/games/escape-room/sessions", `{"mode":"marathon"}`, http.StatusBadRequest},
		{"bad body", http.MethodPost, "/games/escape-room/sessions", `{`, http.StatusBadRequest},
		{"practice disabled", http.MethodPost, "/practice/sessions", `{"topic":"z-scores"}`, http.StatusServiceUnavailable},
		{"bad session id", http.MethodGet, "/sessions/not-a-uuid", "", http.StatusBadRequest},
		{"unknown session", http.MethodPost, "/sessions/6f1c1d52-8d7e-4f4e-9a54-5f0f2f6c1a11/submit", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, srv, tt.method, tt.target, tt.body); rec.Code != tt.status {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.target, rec.Code, tt.status)
			}
		})
	}
}

func TestHandlerTracksNetID(t *testing.T) {
	srv, h := newServer(t)

	if rec := do(t, srv, http.MethodPost, "/games/statistics-game/sessions", ""); rec.Code != http.StatusCreated {
		t.Fatalf("start = %d", rec.Code)
	}
	if len(h.tracker.visits) != 1 || h.tracker.visits[0].netID != "ab1" {
		t.Errorf("visits = %+v", h.tracker.visits)
	}
	if h.tracker.visits[0].dto.Action != activity.ActionQuizStart {
		t.Errorf("action = %s", h.tracker.visits[0].dto.Action)
	}
}
