package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return NewHandler(config.Settings{
		AppEnv:              "local",
		AdminUser:           "admin",
		AdminPassHash:       string(hash),
		GoogleAllowedDomain: "utk.edu",
	})
}

func TestCheckAdmin(t *testing.T) {
	h := newTestHandler(t)

	if err := h.CheckAdmin("admin", "s3cret"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if err := h.CheckAdmin("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v", err)
	}
	if err := h.CheckAdmin("root", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong user = %v", err)
	}

	empty := NewHandler(config.Settings{AdminUser: "admin"})
	if err := empty.CheckAdmin("admin", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("missing hash should reject, got %v", err)
	}
}

func TestLoginIssuesCookie(t *testing.T) {
	os.Setenv("JWT_SECRET", "login-test-secret")
	Init()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName && c.Value != "" {
			found = true
			if _, err := ValidateJWT(c.Value); err != nil {
				t.Errorf("cookie token invalid: %v", err)
			}
		}
	}
	if !found {
		t.Error("session cookie not set")
	}
}

func TestCheckGoogleUser(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		user googleUser
		want error
	}{
		{"HostedDomain", googleUser{Email: "prof@utk.edu", EmailVerified: true, HostedDomain: "utk.edu"}, nil},
		{"EmailSuffix", googleUser{Email: "Prof@UTK.edu", EmailVerified: true}, nil},
		{"OtherDomain", googleUser{Email: "someone@gmail.com", EmailVerified: true}, ErrDomainNotAllowed},
		{"Unverified", googleUser{Email: "prof@utk.edu"}, ErrEmailNotVerified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := h.checkGoogleUser(&tt.user); !errors.Is(err, tt.want) {
				t.Errorf("checkGoogleUser = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGoogleDisabled(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.GoogleLogin(rec, httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 without client credentials", rec.Code)
	}
}

func TestGoogleSignInNeedsAllowedDomain(t *testing.T) {
	h := NewHandler(config.Settings{
		AppEnv:             "local",
		GoogleClientID:     "client",
		GoogleClientSecret: "secret",
	})

	stranger := googleUser{Email: "stranger@gmail.com", EmailVerified: true}
	if err := h.checkGoogleUser(&stranger); !errors.Is(err, ErrDomainNotAllowed) {
		t.Errorf("checkGoogleUser without domain = %v, want ErrDomainNotAllowed", err)
	}

	rec := httptest.NewRecorder()
	h.GoogleLogin(rec, httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when no domain is configured", rec.Code)
	}

	withDomain := NewHandler(config.Settings{
		AppEnv:              "local",
		GoogleClientID:      "client",
		GoogleClientSecret:  "secret",
		GoogleAllowedDomain: "utk.edu",
	})
	rec = httptest.NewRecorder()
	withDomain.GoogleLogin(rec, httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want redirect with a domain configured", rec.Code)
	}
}
