package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"testplatform/api/internal/config"
	"testplatform/api/internal/events"
	"testplatform/api/internal/handlers"
	"testplatform/api/internal/metrics"
	appmiddleware "testplatform/api/internal/middleware"
	"testplatform/api/internal/notifications"
	mongostore "testplatform/api/internal/repositories/mongo"
	"testplatform/api/internal/routers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// corsOptions treats "*" as "reflect any origin" so credentials keep working.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	for _, o := range origins {
		if o == "*" {
			opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
			return opts
		}
	}
	opts.AllowedOrigins = origins
	return opts
}

// newSender falls back to a logging sender when the chosen provider lacks credentials.
func newSender(cfg *config.Config, logger *zap.Logger) notifications.Sender {
	switch cfg.EmailProvider {
	case config.EmailProviderSendGrid:
		sender, err := notifications.NewSendGridSender(cfg.SendGridAPIKey, cfg.SenderEmail)
		if err == nil {
			return sender
		}
		logger.Warn("SendGrid is not configured, notification emails are disabled", zap.Error(err))
	case config.EmailProviderSMTP:
		sender, err := notifications.NewSMTPSender(notifications.SMTPConfig{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			From: cfg.SenderEmail,
		})
		if err == nil {
			return sender
		}
		logger.Warn("SMTP is not configured, notification emails are disabled", zap.Error(err))
	}
	return notifications.NewLogSender(logger)
}

func registerRoutes(router *chi.Mux, h routers.Handlers, admin *appmiddleware.AdminAuth) {
	routers.HealthRoutes(router, h.Health, metrics.Handler())
	routers.APIRoutes(router, h, admin)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger config depends on cfg, so fall back to a production logger here
		bootLogger, _ := zap.NewProduction()
		bootLogger.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	client, err := mongostore.NewClient(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	db, err := client.DB()
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	repos := mongostore.NewRepositories(db)

	indexCtx, cancelIndexes := context.WithTimeout(ctx, 10*time.Second)
	if err := repos.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("failed to ensure indexes", zap.Error(err))
	}
	cancelIndexes()

	admin, err := appmiddleware.NewAdminAuth(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		logger.Fatal("failed to set up admin credentials", zap.Error(err))
	}
	if cfg.DefaultAdminCredentials {
		logger.Warn("using built-in admin credentials, set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}

	dispatcher := notifications.NewDispatcher(newSender(cfg, logger), logger)

	var (
		publisher    handlers.EventPublisher
		eventsPinger handlers.Pinger
		redisEvents  *events.Publisher
	)
	if cfg.RedisAddr != "" {
		redisEvents = events.NewPublisher(cfg.RedisAddr, cfg.EventsChannel)
		pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
		if err := redisEvents.Ping(pingCtx); err != nil {
			logger.Warn("redis not reachable, response events will be dropped until it is", zap.Error(err))
		}
		cancelPing()
		publisher, eventsPinger = redisEvents, redisEvents
		logger.Info("publishing response events", zap.String("channel", cfg.EventsChannel))
	}

	h := routers.Handlers{
		Health:     handlers.NewHealthHandler(client, eventsPinger),
		Category:   handlers.NewCategoryHandler(repos.Categories, logger),
		Template:   handlers.NewTemplateHandler(repos.Templates, logger),
		CustomTest: handlers.NewCustomTestHandler(repos.CustomTests, logger),
		Response:   handlers.NewResponseHandler(repos.Responses, repos.CustomTests, dispatcher, publisher, logger),
		Admin:      handlers.NewAdminHandler(repos.Categories, repos.Templates, repos.CustomTests, repos.Responses, logger),
	}

	router := chi.NewRouter()
	router.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	registerRoutes(router, h, admin)

	serverAddr := ":" + cfg.Port

	// HTTP server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Test platform API starting", zap.String("addr", serverAddr), zap.String("db", cfg.DBName))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Test platform API shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	// let in-flight notification emails finish
	dispatcher.Wait()

	if redisEvents != nil {
		if err := redisEvents.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if err := client.Close(shutdownCtx); err != nil {
		logger.Warn("failed to disconnect from mongo", zap.Error(err))
	}

	logger.Info("Test platform API exited")
}
