package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/storefront/docs"
	"github.com/SergeyBogomolovv/storefront/internal/app"
	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/events"
	"github.com/SergeyBogomolovv/storefront/internal/handler"
	"github.com/SergeyBogomolovv/storefront/internal/middleware"
	"github.com/SergeyBogomolovv/storefront/internal/mpesa"
	"github.com/SergeyBogomolovv/storefront/internal/postgres"
	"github.com/SergeyBogomolovv/storefront/internal/repo"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	"github.com/SergeyBogomolovv/storefront/internal/session"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront API
// @version         1.0
// @description     Заказы, трекинг и оплата M-Pesa
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	loc, err := time.LoadLocation(conf.Orders.Timezone)
	panicIfErr("failed to load timezone", err)

	pool := postgres.New(logger, conf.Postgres)
	defer pool.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	panicIfErr("failed to migrate db", postgres.Migrate(migrateCtx, pool))
	cancel()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(pool)
	txManager := trm.NewManager(pool)
	publisher := events.NewKafkaPublisher(conf.Kafka)

	sessions, sessionCloser := newSessionStore(conf)

	orderService := service.NewOrderService(
		logger, txManager, orderRepo, service.NewOrderNumbers(), publisher, conf.Orders.NumberAttempts,
	)
	paymentService := service.NewPaymentService(
		logger, mpesa.NewClient(conf.Mpesa), sessions, publisher, conf.Mpesa.Timeout,
	)

	var adminGuard func(http.Handler) http.Handler
	if conf.Admin.JWTSecret != "" {
		adminGuard = middleware.AdminOnly(conf.Admin.JWTSecret)
	} else {
		logger.Warn("ADMIN_JWT_SECRET is empty, admin routes are not protected")
	}

	handler.RegisterMetrics()
	trackingConsumer := handler.NewTrackingConsumer(logger, conf.Kafka, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService, loc, conf.Orders.UploadsURL),
		handler.NewPaymentHandler(logger, paymentService),
		handler.NewAdminHandler(logger, orderService, loc, conf.Orders.UploadsURL, adminGuard),
	)
	app.SetConsumers(trackingConsumer)
	app.SetStarters(sessions)
	app.SetClosers(publisher, sessionCloser)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type sessionStore interface {
	service.SessionStore
	app.Starter
}

func newSessionStore(conf config.Config) (sessionStore, app.Closer) {
	if conf.Payments.Store == "redis" {
		store := session.NewRedisStore(session.NewRedisClient(conf.Redis), conf.Payments.SessionTTL)
		return store, store
	}
	return session.NewMemoryStore(conf.Payments.SessionTTL), nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
