package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/swapengine/gw-exchange-rates/internal/facades"
	"github.com/swapengine/gw-exchange-rates/internal/handlers"
	"github.com/swapengine/gw-exchange-rates/internal/jwt"
	"github.com/swapengine/gw-exchange-rates/internal/logger"
	"github.com/swapengine/gw-exchange-rates/internal/metrics"
	"github.com/swapengine/gw-exchange-rates/internal/middlewares"
	"github.com/swapengine/gw-exchange-rates/internal/migrate"
	"github.com/swapengine/gw-exchange-rates/internal/publishers"
	"github.com/swapengine/gw-exchange-rates/internal/repositories"
	"github.com/swapengine/gw-exchange-rates/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/swapengine/gw-exchange-rates/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// @title gw-exchange-rates API
// @version 1.0.0
// @description Microservice for exchange rate resolution, pricing and conversion
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	migrationsPath string

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	jwtSecretKey string
	jwtExpSecond int

	fixerAPIKey        string
	exchangeRateAPIKey string
	currencyAPIKey     string
	quidaxAPIKey       string

	kafkaBrokers []string
	kafkaTopic   string

	refreshSchedule string
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	cfg.migrationsPath = getEnv("POSTGRES_MIGRATIONS_PATH", "migrations")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// External provider keys; a provider with no key is not registered.
	cfg.fixerAPIKey = getEnv("FIXER_API_KEY", "")
	cfg.exchangeRateAPIKey = getEnv("EXCHANGERATE_API_KEY", "")
	cfg.currencyAPIKey = getEnv("CURRENCYAPI_KEY", "")
	cfg.quidaxAPIKey = getEnv("QUIDAX_API_KEY", "")

	// Kafka config; no brokers disables event publishing.
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.kafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.kafkaTopic = getEnv("KAFKA_RATE_TOPIC", "exchange-rate-events")

	// Background refresh; empty schedule disables the cron job.
	cfg.refreshSchedule = getEnv("RATE_REFRESH_SCHEDULE", "@hourly")

	return
}

// run initializes the logger, database, Redis, providers and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	log, err := logger.New(cfg.logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	if err := migrate.Run(db, cfg.migrationsPath); err != nil {
		log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize JWT service
	tokener := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)

	// Initialize repositories
	cacheRepo := repositories.NewRateCacheRepository(rdb)
	readRepo := repositories.NewRateReadRepository(db)
	writeRepo := repositories.NewRateWriteRepository(db)
	fallback := repositories.NewFallbackTable()

	// External providers, in priority order.
	var providers []facades.RateProvider
	if cfg.fixerAPIKey != "" {
		providers = append(providers, facades.NewFixerProvider("", cfg.fixerAPIKey))
	}
	if cfg.exchangeRateAPIKey != "" {
		providers = append(providers, facades.NewExchangeRateAPIProvider("", cfg.exchangeRateAPIKey))
	}
	if cfg.currencyAPIKey != "" {
		providers = append(providers, facades.NewCurrencyAPIProvider("", cfg.currencyAPIKey))
	}
	providers = append(providers, facades.NewQuidaxProvider("", cfg.quidaxAPIKey))
	pool := facades.NewProviderPool(facades.DefaultProviderTimeout, providers...)

	// Kafka publisher, optional.
	var publisher services.RateEventPublisher
	if len(cfg.kafkaBrokers) > 0 {
		kafkaPublisher := publishers.NewKafkaRatePublisher(cfg.kafkaBrokers, cfg.kafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	rateMetrics := metrics.NewRateMetrics(prometheus.DefaultRegisterer)

	// Initialize services
	pricing := services.NewPricingPolicy(services.DefaultPricingConfig())
	calc := services.NewConversionCalculator()
	resolver := services.NewRateResolverService(
		cacheRepo, readRepo, writeRepo, pool, fallback,
		pricing, calc, publisher, rateMetrics,
		services.DefaultResolverConfig(),
	)

	// Initialize handlers
	getRateHandler := handlers.NewGetRateHandler(resolver)
	convertHandler := handlers.NewConvertHandler(resolver)
	pairsHandler := handlers.NewListPairsHandler(resolver)
	updateRateHandler := handlers.NewUpdateRateHandler(resolver)
	historyHandler := handlers.NewGetHistoryHandler(resolver)
	refreshHandler := handlers.NewRefreshHandler(resolver)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/rates", getRateHandler)
		r.Get("/rates/convert", convertHandler)
		r.Get("/rates/pairs", pairsHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Post("/rates", updateRateHandler)
			r.Get("/rates/history", historyHandler)
			r.Post("/rates/refresh", refreshHandler)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	// Background refresh job
	scheduler := cron.New()
	if cfg.refreshSchedule != "" {
		if _, err := scheduler.AddFunc(cfg.refreshSchedule, func() {
			if _, err := resolver.RefreshAll(context.Background()); err != nil {
				log.Errorw("scheduled refresh failed", "error", err)
			}
		}); err != nil {
			log.Fatal("invalid refresh schedule:", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Infof("Rate refresh scheduled: %s", cfg.refreshSchedule)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
