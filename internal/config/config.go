package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// DevHMACSecret is the public fallback signing key. It must not sign admin
// tokens.
const DevHMACSecret = "supersecret-dev-key"

// ErrInsecureAdmin is returned when admin login is enabled with the public
// signing key.
var ErrInsecureAdmin = errors.New("ADMIN_PASS_HASH set but AUTH_HMAC_SECRET is unset or the dev default")

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// commentary
	GeminiAPIKey    string
	GeminiModel     string
	RedisAddr       string // empty disables the commentary cache
	CommentaryTTL   time.Duration
	CommentaryLimit time.Duration

	StakeholdersFile string // YAML; empty uses the built-in profiles

	SeedOnStart bool
	RNGSeed     uint64 // 0 = time-seeded
	SnapshotDir string

	AuthHMACSecret string
	AdminUser      string
	AdminPassHash  string // bcrypt; empty disables admin login

	CORSOrigins []string
	LogLevel    string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:         envOr("HTTP_ADDR", ":5000"),
		DBDriver:         envOr("DB_DRIVER", "sqlite"),
		DBDSN:            envOr("DB_DSN", ""),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      envOr("GEMINI_MODEL", "gemini-pro"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		CommentaryTTL:    envDuration("COMMENTARY_TTL", 24*time.Hour),
		CommentaryLimit:  envDuration("COMMENTARY_TIMEOUT", 15*time.Second),
		StakeholdersFile: os.Getenv("STAKEHOLDERS_FILE"),
		SeedOnStart:      envBool("SEED_ON_START", false),
		RNGSeed:          envUint("RNG_SEED", 0),
		SnapshotDir:      envOr("SNAPSHOT_DIR", "./data"),
		AuthHMACSecret:   envOr("AUTH_HMAC_SECRET", DevHMACSecret),
		AdminUser:        envOr("ADMIN_USER", "admin"),
		AdminPassHash:    os.Getenv("ADMIN_PASS_HASH"),
		CORSOrigins:      csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		LogLevel:         envOr("LOG_LEVEL", "info"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envUint(k string, def uint64) uint64 {
	v, err := strconv.ParseUint(os.Getenv(k), 10, 64)
	if err != nil {
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
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CheckAdmin refuses an admin login configuration signed with the dev secret.
func (c Config) CheckAdmin() error {
	if c.AdminPassHash != "" && (c.AuthHMACSecret == "" || c.AuthHMACSecret == DevHMACSecret) {
		return ErrInsecureAdmin
	}
	return nil
}
