package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("API_BASE_URL", "http://api.local/api/")
	t.Setenv("COOKIE_SECRET", "s3cret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("ALLOW_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()

	if cfg.APIBaseURL != "http://api.local/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage, got %q", cfg.StorageDriver)
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.AllowOrigins)
	}
	if cfg.SearchViewCapacity != 1024 || cfg.RateLimitRPS != 20 || cfg.LogstashQueueSize != 1024 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadPanicsWithoutRequired(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("COOKIE_SECRET", "x")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing API_BASE_URL")
		}
	}()
	Load()
}

func TestLoadPostgresRequiresDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing DATABASE_URL")
		}
	}()
	Load()
}

func TestLoadMinIO(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "MINIO")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "ak")
	t.Setenv("MINIO_SECRET_KEY", "sk")
	t.Setenv("MINIO_BUCKET_STORAGE", "")

	cfg := Load()
	if cfg.StorageDriver != StorageMinIO || cfg.MinIOBucketStorage != "destimatch-storage" {
		t.Fatalf("unexpected minio config %+v", cfg)
	}
}

func TestLoadLogstashQueueSize(t *testing.T) {
	setRequired(t)
	t.Setenv("LOGSTASH_QUEUE_SIZE", "64")
	if cfg := Load(); cfg.LogstashQueueSize != 64 {
		t.Fatalf("expected queue size 64, got %d", cfg.LogstashQueueSize)
	}

	t.Setenv("LOGSTASH_QUEUE_SIZE", "-3")
	if cfg := Load(); cfg.LogstashQueueSize != 1024 {
		t.Fatalf("expected default queue size for invalid value, got %d", cfg.LogstashQueueSize)
	}
}
