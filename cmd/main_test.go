package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-29") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}

	// PostgreSQL
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" || cfg.pgPassword != "password" || cfg.pgDB != "database" ||
		cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 || cfg.migrationsPath != "migrations" {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.redisHost != "localhost" || cfg.redisPort != 6379 || cfg.redisDB != 0 || cfg.redisPassword != "" ||
		cfg.redisPoolSize != 10 || cfg.redisMinIdleConns != 2 {
		t.Errorf("unexpected redis config")
	}

	// JWT
	if cfg.jwtSecretKey != "my_super_secret_key" || cfg.jwtExpSecond != 3600 {
		t.Errorf("unexpected jwt config")
	}

	// Providers have no keys by default
	if cfg.fixerAPIKey != "" || cfg.exchangeRateAPIKey != "" || cfg.currencyAPIKey != "" || cfg.quidaxAPIKey != "" {
		t.Errorf("unexpected provider keys")
	}

	// Kafka disabled, hourly refresh by default
	if len(cfg.kafkaBrokers) != 0 || cfg.kafkaTopic != "exchange-rate-events" || cfg.refreshSchedule != "@hourly" {
		t.Errorf("unexpected kafka/refresh config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")
	os.Setenv("POSTGRES_MIGRATIONS_PATH", "/opt/migrations")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	os.Setenv("FIXER_API_KEY", "fixer-key")
	os.Setenv("EXCHANGERATE_API_KEY", "era-key")
	os.Setenv("CURRENCYAPI_KEY", "capi-key")
	os.Setenv("QUIDAX_API_KEY", "quidax-key")

	os.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	os.Setenv("KAFKA_RATE_TOPIC", "rates")
	os.Setenv("RATE_REFRESH_SCHEDULE", "@every 30m")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Check all variables
	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" || cfg.pgPassword != "secret" || cfg.pgDB != "mydb" ||
		cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 || cfg.migrationsPath != "/opt/migrations" {
		t.Errorf("unexpected postgres config")
	}
	if cfg.redisHost != "redis.example.com" || cfg.redisPort != 6380 || cfg.redisDB != 2 || cfg.redisPassword != "redispass" ||
		cfg.redisPoolSize != 15 || cfg.redisMinIdleConns != 5 {
		t.Errorf("unexpected redis config")
	}
	if cfg.jwtSecretKey != "supersecret" || cfg.jwtExpSecond != 300 {
		t.Errorf("unexpected jwt config")
	}
	if cfg.fixerAPIKey != "fixer-key" || cfg.exchangeRateAPIKey != "era-key" ||
		cfg.currencyAPIKey != "capi-key" || cfg.quidaxAPIKey != "quidax-key" {
		t.Errorf("unexpected provider keys")
	}
	if len(cfg.kafkaBrokers) != 2 || cfg.kafkaBrokers[0] != "kafka1:9092" || cfg.kafkaBrokers[1] != "kafka2:9092" {
		t.Errorf("unexpected kafka brokers: %v", cfg.kafkaBrokers)
	}
	if cfg.kafkaTopic != "rates" || cfg.refreshSchedule != "@every 30m" {
		t.Errorf("unexpected kafka/refresh config")
	}
}

func TestParseConfig_InvalidNumeric(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Error("expected error for invalid POSTGRES_PORT")
	}
}
