package config

import "time"

const (
	defaultPort           = "8080"
	defaultDogAPIBaseURL  = "https://api.thedogapi.com/v1"
	defaultDogAPITimeout  = 10 * time.Second
	defaultDogAPIRPS      = 5.0
	defaultDBMaxOpenConns = 10
	defaultAppName        = "dogs-catalog"
)

// Config se carga una sola vez en main y se pasa hacia abajo.
type Config struct {
	Port      string
	Log       LogConfig
	DB        DBConfig
	DogAPI    DogAPIConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Metrics   bool
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type DBConfig struct {
	DSN          string // vacío => repos in-memory
	MaxOpenConns int
}

type DogAPIConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	RPS     float64 // 0 => sin límite
}

type RedisConfig struct {
	Addr     string // vacío => sin cache
	Password string
	DB       int
	CacheTTL time.Duration
}

type RateLimitConfig struct {
	RPS   float64 // 0 => desactivado
	Burst int

	// TrustProxy: la key sale de X-Forwarded-For. Solo detrás de un proxy propio.
	TrustProxy bool
}

func Load() Config {
	return Config{
		Port: envOrDefault("PORT", defaultPort),
		Log: LogConfig{
			Level:  envOrDefault("LOG_LEVEL", "info"),
			Format: envOrDefault("LOG_FORMAT", "text"),
			App:    envOrDefault("APP_NAME", defaultAppName),
		},
		DB: DBConfig{
			DSN:          firstEnv("DB_DSN", "DATABASE_URL"),
			MaxOpenConns: intEnvOrDefault("DB_MAX_OPEN_CONNS", defaultDBMaxOpenConns),
		},
		DogAPI: DogAPIConfig{
			BaseURL: envOrDefault("DOG_API_BASE_URL", defaultDogAPIBaseURL),
			APIKey:  firstEnv("DOG_API_KEY", "API_KEY"),
			Timeout: durationEnvOrDefault("DOG_API_TIMEOUT", defaultDogAPITimeout),
			RPS:     floatEnvOrDefault("DOG_API_RPS", defaultDogAPIRPS),
		},
		Redis: RedisConfig{
			Addr:     firstEnv("REDIS_ADDR"),
			Password: firstEnv("REDIS_PASSWORD"),
			DB:       intEnvOrDefault("REDIS_DB", 0),
			CacheTTL: durationEnvOrDefault("CATALOG_CACHE_TTL", 0),
		},
		RateLimit: RateLimitConfig{
			RPS:   floatEnvOrDefault("RATE_LIMIT_RPS", 0),
			Burst: intEnvOrDefault("RATE_LIMIT_BURST", 20),

			TrustProxy: boolEnvOrDefault("RATE_LIMIT_TRUST_PROXY", false),
		},
		Metrics: boolEnvOrDefault("METRICS_ENABLED", true),
	}
}
