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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-trading-hub/internal/facades"
	"github.com/sbilibin2017/gw-trading-hub/internal/handlers"
	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/mailer"
	"github.com/sbilibin2017/gw-trading-hub/internal/middlewares"
	"github.com/sbilibin2017/gw-trading-hub/internal/repositories"
	"github.com/sbilibin2017/gw-trading-hub/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings parsed from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	RatesURL   string
	RatesAppID string
	NewsURL    string
	NewsAPIKey string

	KafkaBrokers string
	KafkaTopic   string

	SessionTTLSecond    int
	RatesCacheTTLSecond int
}

// @title gw-trading-hub API
// @version 1.0.0
// @description Service for user registration, an admin-managed item catalog and proxied market data feeds
// @host localhost:8080
// @BasePath /
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, SMTP, feed, Kafka and session configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// SMTP config
	cfg.SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	if cfg.SMTPPort, err = strconv.Atoi(getEnv("SMTP_PORT", "465")); err != nil {
		return
	}
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "noreply@tradinghub.local")

	// External feed config
	cfg.RatesURL = getEnv("RATES_URL", "https://openexchangerates.org/api/latest.json")
	cfg.RatesAppID = getEnv("RATES_APP_ID", "")
	cfg.NewsURL = getEnv("NEWS_URL", "https://newsdata.io/api/1/news")
	cfg.NewsAPIKey = getEnv("NEWS_API_KEY", "")

	// Kafka config; empty brokers disable audit publishing
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "item-audit")

	// Session and cache config
	if cfg.SessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "3600")); err != nil {
		return
	}
	if cfg.RatesCacheTTLSecond, err = strconv.Atoi(getEnv("RATES_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, mailer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	if err := repositories.RunMigrations(ctx, db.DB); err != nil {
		log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka audit writer, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize mailer
	smtpMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	itemReadRepo := repositories.NewItemReadRepository(db)
	itemWriteRepo := repositories.NewItemWriteRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb, time.Duration(cfg.SessionTTLSecond)*time.Second)
	ratesCacheRepo := repositories.NewRatesCacheRepository(rdb, time.Duration(cfg.RatesCacheTTLSecond)*time.Second)

	// Initialize facades
	ratesFacade := facades.NewRatesHTTPFacade(nil, cfg.RatesURL, cfg.RatesAppID)
	newsFacade := facades.NewNewsHTTPFacade(nil, cfg.NewsURL, cfg.NewsAPIKey)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, smtpMailer)
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo, kafkaWriter)
	sessionService := services.NewSessionService(sessionRepo)
	ratesService := services.NewRatesService(ratesFacade, ratesCacheRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, sessionService)
	logoutHandler := handlers.NewLogoutHandler(sessionService)
	dashboardHandler := handlers.NewDashboardHandler(itemService)
	itemListHandler := handlers.NewItemListHandler(itemService)
	itemCreateHandler := handlers.NewItemCreateHandler(itemService)
	itemUpdateHandler := handlers.NewItemUpdateHandler(itemService)
	itemDeleteHandler := handlers.NewItemDeleteHandler(itemService)
	ratesHandler := handlers.NewExchangeRatesHandler(ratesService)
	newsHandler := handlers.NewCryptoNewsHandler(newsFacade)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.Post("/logout", logoutHandler)
	r.Get("/exchange-rates", ratesHandler)
	r.Get("/crypto-news", newsHandler)

	// Session-protected routes
	sessionMiddleware := middlewares.SessionMiddleware(sessionService)
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/dashboard", dashboardHandler)
	})

	// Admin routes re-derive the role from the credential store per request
	adminMiddleware := middlewares.AdminMiddleware(userReadRepo)
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Use(adminMiddleware)
		r.Get("/admin/items", itemListHandler)
		r.Post("/admin/items", itemCreateHandler)
		r.Put("/admin/items/{itemID}", itemUpdateHandler)
		r.Delete("/admin/items/{itemID}", itemDeleteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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
