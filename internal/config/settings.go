package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Settings struct {
	AppEnv   string
	HTTPAddr string

	DatabaseDSN string

	CORSOrigins []string

	AdminUser     string
	AdminPassHash string

	GoogleClientID      string
	GoogleClientSecret  string
	GoogleRedirectURL   string
	GoogleAllowedDomain string

	GeminiModel string

	Timezone string

	QuizDwell      time.Duration
	SessionIdleTTL time.Duration
	MaxSessions    int
}

func Load() Settings {
	return Settings{
		AppEnv:   envOr("APP_ENV", "production"),
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),

		AdminUser:     envOr("ADMIN_USER", "admin"),
		AdminPassHash: os.Getenv("ADMIN_PASS_HASH"),

		GoogleClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:  os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:   os.Getenv("GOOGLE_REDIRECT_URL"),
		GoogleAllowedDomain: os.Getenv("GOOGLE_ALLOWED_DOMAIN"),

		GeminiModel: envOr("GEMINI_MODEL", "gemini-2.0-flash"),

		Timezone: envOr("CAMPUS_TZ", "America/New_York"),

		QuizDwell:      envDuration("QUIZ_DWELL", 3*time.Second),
		SessionIdleTTL: envDuration("SESSION_IDLE_TTL", 30*time.Minute),
		MaxSessions:    envInt("MAX_SESSIONS", 5000),
	}
}

func (s Settings) IsLocal() bool {
	return strings.EqualFold(s.AppEnv, "local")
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	parts := strings.Split(envOr(k, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
