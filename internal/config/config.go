package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMinIO    = "minio"
)

type Config struct {
	Port               string
	APIBaseURL         string
	AllowOrigins       []string
	LogstashTCPAddr    string
	LogstashQueueSize  int
	StorageDriver      string
	DatabaseURL        string
	SQLitePath         string
	StorageTable       string
	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOBucketStorage string
	CookieSecret       string
	CookieSecure       bool
	RateLimitRPS       float64
	SearchViewCapacity int
	SwaggerSpecPath    string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	rps := 20.0
	if v, err := strconv.ParseFloat(getenv("RATE_LIMIT_RPS", "20"), 64); err == nil && v >= 0 {
		rps = v
	}

	capacity := 1024
	if v, err := strconv.Atoi(getenv("SEARCH_VIEW_CAPACITY", "1024")); err == nil && v > 0 {
		capacity = v
	}

	queue := 1024
	if v, err := strconv.Atoi(getenv("LOGSTASH_QUEUE_SIZE", "1024")); err == nil && v > 0 {
		queue = v
	}

	cfg := Config{
		Port:               getenv("PORT", "8080"),
		APIBaseURL:         strings.TrimRight(must("API_BASE_URL"), "/"),
		AllowOrigins:       splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:    getenv("LOGSTASH_TCP_ADDR", ""),
		LogstashQueueSize:  queue,
		StorageDriver:      strings.ToLower(getenv("STORAGE_DRIVER", StorageMemory)),
		SQLitePath:         getenv("SQLITE_PATH", "destimatch.db"),
		StorageTable:       getenv("STORAGE_TABLE", "client_storage"),
		CookieSecret:       must("COOKIE_SECRET"),
		CookieSecure:       getenv("COOKIE_SECURE", "false") == "true",
		RateLimitRPS:       rps,
		SearchViewCapacity: capacity,
		SwaggerSpecPath:    getenv("SWAGGER_SPEC_PATH", "docs/swagger.yaml"),
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		cfg.DatabaseURL = must("DATABASE_URL")
	case StorageMinIO:
		cfg.MinIOEndpoint = must("MINIO_ENDPOINT")
		cfg.MinIOAccessKey = must("MINIO_ACCESS_KEY")
		cfg.MinIOSecretKey = must("MINIO_SECRET_KEY")
		cfg.MinIOUseSSL = getenv("MINIO_USE_SSL", "false") == "true"
		cfg.MinIOBucketStorage = getenv("MINIO_BUCKET_STORAGE", "destimatch-storage")
	default:
		panic("unknown STORAGE_DRIVER: " + cfg.StorageDriver)
	}
	return cfg
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
