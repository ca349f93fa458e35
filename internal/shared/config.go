package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	NominatimBase string
	OverpassBase  string
	OSMUserAgent  string
	OSMClientRPS  int
	GeocodeBias   string // appended to free-text geocode queries

	SearchRadiusKm float64
	BroadenFactor  float64 // broadened retry radius = SearchRadiusKm * BroadenFactor
	PageSize       int
	MaxCandidates  int

	BudgetLowMax     float64
	BudgetMidMax     float64
	BudgetPremiumCap float64
	TZSPerUSD        float64

	CacheTTL   time.Duration
	SessionTTL time.Duration
	Workers    int
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
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/huduma?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),

		NominatimBase: env("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		OverpassBase:  env("OVERPASS_BASE_URL", "https://overpass-api.de"),
		OSMUserAgent:  env("OSM_USER_AGENT", "huduma-finder/1.0"),
		OSMClientRPS:  atoi("OSM_CLIENT_RPS", 1),
		GeocodeBias:   env("GEOCODE_BIAS", "Dar es Salaam, Tanzania"),

		SearchRadiusKm: atof("SEARCH_RADIUS_KM", 10),
		BroadenFactor:  atof("SEARCH_BROADEN_FACTOR", 2.0),
		PageSize:       atoi("RESULT_PAGE_SIZE", 3),
		MaxCandidates:  atoi("MAX_CANDIDATES", 20),

		BudgetLowMax:     atof("BUDGET_LOW_MAX", 50),
		BudgetMidMax:     atof("BUDGET_MID_MAX", 150),
		BudgetPremiumCap: atof("BUDGET_PREMIUM_CAP", 1000),
		TZSPerUSD:        atof("TZS_PER_USD", 2300),

		CacheTTL:   time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL: time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,
		Workers:    atoi("SEED_WORKERS", 8),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
