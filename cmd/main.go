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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	kafka "github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/akosachev/panelshop/docs"
	"github.com/akosachev/panelshop/internal/bot"
	"github.com/akosachev/panelshop/internal/facades"
	"github.com/akosachev/panelshop/internal/handlers"
	"github.com/akosachev/panelshop/internal/jwt"
	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/middlewares"
	"github.com/akosachev/panelshop/internal/repositories"
	"github.com/akosachev/panelshop/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title panelshop API
// @version 1.0.0
// @description Operator API for the hosting-panel shop: users, offers, stats, reconciliations
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
	AppHost  string
	AppPort  string
	LogLevel string

	LedgerFile string

	BotToken    string
	AdminChatID int64

	PanelHost     string
	PanelUsername string
	PanelPassword string

	PaymentsBaseURL     string
	PaymentsAPIKey      string
	PaymentsIPNSecret   string
	PaymentsCallbackURL string

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	ConvStateTTL  time.Duration
	CurrencyTTL   time.Duration

	KafkaBrokers string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	AdminUsername     string
	AdminPasswordHash string
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var cfg config
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Ledger config
	cfg.LedgerFile = getEnv("LEDGER_FILE", "users.db")

	// Telegram config
	cfg.BotToken = getEnv("BOT_TOKEN", "")
	if raw := getEnv("ADMIN_CHAT_ID", "0"); raw != "" {
		if cfg.AdminChatID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return cfg, fmt.Errorf("invalid ADMIN_CHAT_ID: %w", err)
		}
	}

	// Hosting panel config
	cfg.PanelHost = getEnv("PANEL_HOST", "localhost:8443")
	cfg.PanelUsername = getEnv("PANEL_USERNAME", "admin")
	cfg.PanelPassword = getEnv("PANEL_PASSWORD", "")

	// Payment provider config
	cfg.PaymentsBaseURL = getEnv("PAYMENTS_BASE_URL", "https://api.nowpayments.io/v1")
	cfg.PaymentsAPIKey = getEnv("PAYMENTS_API_KEY", "")
	cfg.PaymentsIPNSecret = getEnv("PAYMENTS_IPN_SECRET", "")
	cfg.PaymentsCallbackURL = getEnv("PAYMENTS_CALLBACK_URL", "http://localhost:8080/webhook/payments")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return cfg, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	convTTLMin, err := strconv.Atoi(getEnv("CONV_STATE_TTL_MIN", "15"))
	if err != nil {
		return cfg, fmt.Errorf("invalid CONV_STATE_TTL_MIN: %w", err)
	}
	cfg.ConvStateTTL = time.Duration(convTTLMin) * time.Minute
	currencyTTLMin, err := strconv.Atoi(getEnv("CURRENCY_CACHE_TTL_MIN", "60"))
	if err != nil {
		return cfg, fmt.Errorf("invalid CURRENCY_CACHE_TTL_MIN: %w", err)
	}
	cfg.CurrencyTTL = time.Duration(currencyTTLMin) * time.Minute

	// Kafka config
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return cfg, fmt.Errorf("invalid JWT_EXP_SECOND: %w", err)
	}

	// Operator account config
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	cfg.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")

	return cfg, nil
}

// run initializes the logger, ledger, Redis, Kafka, Telegram bot, cron and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open the ledger file
	ledger, err := repositories.NewLedgerRepository(cfg.LedgerFile)
	if err != nil {
		return fmt.Errorf("failed to open ledger %s: %w", cfg.LedgerFile, err)
	}
	logger.Log.Infof("Ledger opened at %s", cfg.LedgerFile)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for the wallet transaction stream
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	tokens := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	convStates := repositories.NewConversationStateRepository(rdb, cfg.ConvStateTTL)
	currencyCache := repositories.NewCurrencyCacheRepository(rdb, cfg.CurrencyTTL)

	// Initialize facades
	panel := facades.NewPanelFacade(cfg.PanelHost, cfg.PanelUsername, cfg.PanelPassword)
	payments := facades.NewPaymentsFacade(cfg.PaymentsBaseURL, cfg.PaymentsAPIKey, cfg.PaymentsCallbackURL)

	// Initialize services
	walletService := services.NewWalletService(ledger, kafkaWriter)
	ipnService := services.NewIPNService(cfg.PaymentsIPNSecret, walletService)
	purchaseService := services.NewPurchaseService(ledger, walletService, panel)
	offerService := services.NewOfferService(ledger)
	authService := services.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, tokens)
	adminService := services.NewAdminService(ledger, panel)

	// Initialize the Telegram bot
	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	tgBot := bot.New(botAPI, walletService, purchaseService, offerService, payments, convStates, currencyCache, cfg.AdminChatID)

	sweeper := services.NewReconcileSweeper(ledger, tgBot)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(authService)
	webhookHandler := handlers.NewPaymentsWebhookHandler(ipnService)
	listUsersHandler := handlers.NewListUsersHandler(adminService)
	getUserHandler := handlers.NewGetUserHandler(adminService)
	editSubscriptionHandler := handlers.NewEditSubscriptionHandler(adminService)
	adjustWalletHandler := handlers.NewAdjustWalletHandler(walletService)
	listOffersHandler := handlers.NewListOffersHandler(offerService)
	getOfferHandler := handlers.NewGetOfferHandler(offerService)
	createOfferHandler := handlers.NewCreateOfferHandler(offerService)
	updateOfferHandler := handlers.NewUpdateOfferHandler(offerService)
	deleteOfferHandler := handlers.NewDeleteOfferHandler(offerService)
	statsHandler := handlers.NewStatsHandler(adminService)
	listReconciliationsHandler := handlers.NewListReconciliationsHandler(adminService)
	resolveReconciliationHandler := handlers.NewResolveReconciliationHandler(adminService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/webhook/payments", webhookHandler)
	r.Post("/api/v1/login", loginHandler)

	// Protected routes with JWT middleware
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/users", listUsersHandler)
		r.Get("/users/{id}", getUserHandler)
		r.Put("/users/{id}/subscription", editSubscriptionHandler)
		r.Post("/users/{id}/wallet/adjust", adjustWalletHandler)
		r.Get("/offers", listOffersHandler)
		r.Get("/offers/{id}", getOfferHandler)
		r.Post("/offers", createOfferHandler)
		r.Put("/offers/{id}", updateOfferHandler)
		r.Delete("/offers/{id}", deleteOfferHandler)
		r.Get("/stats", statsHandler)
		r.Get("/reconciliations", listReconciliationsHandler)
		r.Post("/reconciliations/{id}/resolve", resolveReconciliationHandler)
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

	// Daily reconciliation sweep
	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", func() {
		if err := sweeper.Sweep(context.Background()); err != nil {
			logger.Log.Errorw("reconciliation sweep failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule reconciliation sweep: %w", err)
	}
	c.Start()
	defer c.Stop()

	go tgBot.Run(ctxShutdown)

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
