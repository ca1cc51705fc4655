package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// MaxDays is the longest trip the planner form accepts.
const MaxDays = 30

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string // empty: in-memory partner storage; parseTime is forced on at startup
	RedisAddr   string // empty: no cache, in-memory sessions
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	SessionTTL  time.Duration
	CORSOrigins []string

	AIBaseURL string
	AIKey     string
	AIModel   string
	AIRPS     float64

	WarmWorkers int
	WarmDays    int

	BookingURL string
	AirbnbURL  string
}

// LoadDotenv reads a local .env file when one exists. Variables already set in
// the environment win.
func LoadDotenv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Debug().Err(err).Msg(".env not loaded, using process environment")
	}
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    os.Getenv("MYSQL_DSN"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL:  time.Duration(atoi("SESSION_TTL_SECONDS", 7*24*3600)) * time.Second,
		CORSOrigins: splitList(env("CORS_ORIGINS", "*")),
		AIBaseURL:   env("AI_BASE_URL", "https://api.openai.com/v1"),
		AIKey:       env("AI_API_KEY", ""),
		AIModel:     env("AI_MODEL", "gpt-4o-mini"),
		AIRPS:       atof("AI_RPS", 2),
		WarmWorkers: atoi("WARM_WORKERS", 8),
		WarmDays:    atoi("WARM_DAYS", 7),
		BookingURL:  env("BOOKING_AFFILIATE_URL", ""),
		AirbnbURL:   env("AIRBNB_AFFILIATE_URL", ""),
	}
	if c.WarmDays > MaxDays {
		c.WarmDays = MaxDays
	}
	if c.AIKey == "" {
		log.Info().Msg("AI_API_KEY is empty, itineraries use the heuristic builder only")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
