package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	tokenTTL        = 12 * time.Hour
	stateCookieName = "oauth_state"
	userInfoURL     = "https://openidconnect.googleapis.com/v1/userinfo"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGoogleDisabled     = errors.New("google sign-in not configured")
	ErrDomainNotAllowed   = errors.New("email domain not allowed")
	ErrEmailNotVerified   = errors.New("email not verified")
)

type googleUser struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	HostedDomain  string `json:"hd"`
}

type Handler struct {
	adminUser     string
	adminPassHash []byte
	oauthConfig   *oauth2.Config
	allowedDomain string
	secureCookies bool
	userInfoURL   string
}

func NewHandler(s config.Settings) *Handler {
	h := &Handler{
		adminUser:     s.AdminUser,
		adminPassHash: []byte(s.AdminPassHash),
		allowedDomain: strings.ToLower(s.GoogleAllowedDomain),
		secureCookies: !s.IsLocal(),
		userInfoURL:   userInfoURL,
	}
	// Google sign-in grants the instructor role, so it stays off without a domain.
	if s.GoogleClientID != "" && s.GoogleClientSecret != "" && h.allowedDomain != "" {
		h.oauthConfig = &oauth2.Config{
			ClientID:     s.GoogleClientID,
			ClientSecret: s.GoogleClientSecret,
			RedirectURL:  s.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return h
}

// CheckAdmin verifies the local admin account against its bcrypt hash.
func (h *Handler) CheckAdmin(username, password string) error {
	if len(h.adminPassHash) == 0 || username != h.adminUser {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(h.adminPassHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.CheckAdmin(payload.Username, payload.Password); err != nil {
		log.WithField("username", payload.Username).Warn("Admin login failed")
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	h.issue(w, r, payload.Username, RoleAdmin)
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig == nil {
		http.Error(w, ErrGoogleDisabled.Error(), http.StatusNotFound)
		return
	}

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.oauthConfig.AuthCodeURL(state), http.StatusFound)
}

func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if h.oauthConfig == nil {
		http.Error(w, ErrGoogleDisabled.Error(), http.StatusNotFound)
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		log.Warn("OAuth state mismatch")
		http.Error(w, "invalid oauth state", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		http.Error(w, "google sign-in failed", http.StatusBadGateway)
		return
	}

	user, err := h.fetchGoogleUser(r.Context(), token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google profile")
		http.Error(w, "google sign-in failed", http.StatusBadGateway)
		return
	}

	if err := h.checkGoogleUser(user); err != nil {
		log.WithError(err).WithField("email", user.Email).Warn("Google account rejected")
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	h.issue(w, r, user.Email, RoleInstructor)
}

func (h *Handler) fetchGoogleUser(ctx context.Context, token *oauth2.Token) (*googleUser, error) {
	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo: HTTP %d", resp.StatusCode)
	}

	var u googleUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &u, nil
}

func (h *Handler) checkGoogleUser(u *googleUser) error {
	if !u.EmailVerified {
		return ErrEmailNotVerified
	}
	if h.allowedDomain == "" {
		return ErrDomainNotAllowed
	}
	if strings.EqualFold(u.HostedDomain, h.allowedDomain) ||
		strings.HasSuffix(strings.ToLower(u.Email), "@"+h.allowedDomain) {
		return nil
	}
	return ErrDomainNotAllowed
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request, userID, role string) {
	token, err := GenerateJWT(userID, role, tokenTTL)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to sign token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token, tokenTTL, h.secureCookies)
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"token":      token,
		"role":       role,
		"expires_in": int(tokenTTL.Seconds()),
	})
}
