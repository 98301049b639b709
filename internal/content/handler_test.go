package content_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/statbook-lambda/internal/content"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	content.Mount(r, content.NewHandler(loadDefault(t)))
	return r
}

func TestHandler(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"chapters", "/chapters", http.StatusOK},
		{"chapter", "/chapters/6", http.StatusOK},
		{"chapter not found", "/chapters/42", http.StatusNotFound},
		{"chapter bad number", "/chapters/six", http.StatusBadRequest},
		{"navigation", "/navigation?path=/chapters/6/scatterplots", http.StatusOK},
		{"navigation without path", "/navigation", http.StatusBadRequest},
		{"games", "/games", http.StatusOK},
		{"games by chapter", "/games?chapter=1", http.StatusOK},
		{"games bad chapter", "/games?chapter=x", http.StatusBadRequest},
		{"game", "/games/escape-room", http.StatusOK},
		{"game not found", "/games/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if rec.Code != tt.status {
				t.Errorf("GET %s = %d, want %d", tt.target, rec.Code, tt.status)
			}
		})
	}
}

func TestGameResponseHidesAnswers(t *testing.T) {
	srv := newServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/escape-room", nil))

	body := rec.Body.String()
	if strings.Contains(body, "Identifier Variable") {
		t.Error("game metadata leaked an answer")
	}

	var resp content.GameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.QuestionCount != 5 || resp.QuickCount != 3 || !resp.RetryIncorrect {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestListGamesFiltersByChapter(t *testing.T) {
	srv := newServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games?chapter=8", nil))

	var games []content.GameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &games); err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 || games[0].Slug != "r-arithmetic-game" {
		t.Errorf("chapter 8 games = %+v", games)
	}
}
