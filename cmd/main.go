package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/autoapply/unified-service/internal/handlers"
	"github.com/autoapply/unified-service/internal/jwt"
	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/mailer"
	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/repositories"
	"github.com/autoapply/unified-service/internal/services"

	_ "github.com/autoapply/unified-service/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	StatsCacheTTL     time.Duration

	KafkaBrokers string
	KafkaTopic   string

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailFrom     string

	JWTSecretKey string
	JWTExp       time.Duration

	CORSAllowedOrigins []string

	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string
	FrontendURL        string
}

// @title autoapply unified-service API
// @version 1.0.0
// @description Backend for tracking job applications, structured profiles and resume versions, with assist endpoints for the browser extension
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
		stdlog.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		stdlog.Fatalf("application stopped with error: %v", err)
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

// parseConfig loads environment variables from a file and returns the
// full application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "database")
	if cfg.PgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	statsTTL, err := getEnvInt("STATS_CACHE_TTL_SECOND", 300)
	if err != nil {
		return nil, err
	}
	cfg.StatsCacheTTL = time.Duration(statsTTL) * time.Second

	// Kafka config; empty brokers disable event publishing
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "job-status-events")

	// SMTP config; empty username disables outgoing mail
	cfg.MailHost = getEnv("MAIL_HOST", "smtp.gmail.com")
	if cfg.MailPort, err = getEnvInt("MAIL_PORT", 587); err != nil {
		return nil, err
	}
	cfg.MailUsername = getEnv("MAIL_USERNAME", "")
	cfg.MailPassword = getEnv("MAIL_PASSWORD", "")
	cfg.MailFrom = getEnv("MAIL_FROM", "noreply@autoapply.io")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getEnvInt("JWT_EXP_SECOND", 86400)
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// CORS config
	cfg.CORSAllowedOrigins = strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")

	// OAuth config; empty client id disables Google login routes
	cfg.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	cfg.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", "")
	cfg.OAuthRedirectURL = getEnv("OAUTH_REDIRECT_URL",
		fmt.Sprintf("http://%s:%s/api/auth/oauth/google/callback", cfg.AppHost, cfg.AppPort))
	cfg.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, mail and HTTP
// server. It sets up routes, applies middleware, starts the hourly
// email sync and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
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
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka events enabled on topic %s", cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokener := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	resetTokenRepo := repositories.NewPasswordResetTokenRepository(db)
	jobRepo := repositories.NewJobApplicationRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	resumeVersionRepo := repositories.NewResumeVersionRepository(db)
	statsCache := repositories.NewStatsCacheRepository(rdb, cfg.StatsCacheTTL)

	// Initialize services
	mail := mailer.New(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword, cfg.MailFrom, cfg.FrontendURL)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	resetService := services.NewPasswordResetService(userReadRepo, userWriteRepo, resetTokenRepo, mail)
	jobService := services.NewJobService(jobRepo, statsCache, kafkaWriter)
	profileService := services.NewProfileService(profileRepo)
	automationService := services.NewAutomationService(profileRepo)
	resumeService := services.NewResumeService(resumeVersionRepo)
	jobParserService := services.NewJobParserService()
	linkParserService := services.NewLinkParserService()
	emailSyncService := services.NewEmailSyncService()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/forgot-password", handlers.NewForgotPasswordHandler(resetService))
		r.Post("/reset-password", handlers.NewResetPasswordHandler(resetService))

		if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
			oauthCfg := &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				RedirectURL:  cfg.OAuthRedirectURL,
				Scopes:       []string{"openid", "email", "profile"},
				Endpoint:     google.Endpoint,
			}
			r.Get("/oauth/google", handlers.NewGoogleLoginHandler(oauthCfg))
			r.Get("/oauth/google/callback", handlers.NewGoogleCallbackHandler(oauthCfg, authService, cfg.FrontendURL))
			logger.Log.Info("Google OAuth login enabled")
		}
	})

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokener)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.TxMiddleware(db))

		r.Route("/api/jobs", func(r chi.Router) {
			r.Post("/", handlers.NewCreateJobHandler(jobService))
			r.Get("/", handlers.NewGetJobsHandler(jobService))
			r.Get("/stats", handlers.NewJobStatsHandler(jobService))
			r.Get("/status/{status}", handlers.NewGetJobsByStatusHandler(jobService))
			r.Post("/parse", handlers.NewParseJobHandler(linkParserService, jobParserService))
			r.Get("/{id}", handlers.NewGetJobHandler(jobService))
			r.Put("/{id}", handlers.NewUpdateJobHandler(jobService))
			r.Delete("/{id}", handlers.NewDeleteJobHandler(jobService))
		})

		r.Route("/api/profile", func(r chi.Router) {
			r.Get("/", handlers.NewGetProfileHandler(profileService))
			r.Put("/", handlers.NewUpdateProfileHandler(profileService))
		})

		r.Post("/api/automation/analyze", handlers.NewAnalyzePageHandler(automationService))
		r.Post("/api/resumes/tailor", handlers.NewTailorResumeHandler(resumeService))

		r.Route("/api/resume-versions", func(r chi.Router) {
			r.Post("/", handlers.NewCreateResumeVersionHandler(resumeService))
			r.Get("/", handlers.NewGetResumeVersionsHandler(resumeService))
			r.Get("/{id}", handlers.NewGetResumeVersionHandler(resumeService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Hourly email sync
	c := cron.New()
	if _, err := c.AddFunc("@hourly", emailSyncService.SyncEmails); err != nil {
		return fmt.Errorf("failed to schedule email sync: %w", err)
	}
	c.Start()
	defer c.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
