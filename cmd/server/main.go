package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/coworking-space-booking/internal/config"
	"github.com/iliyamo/coworking-space-booking/internal/database"
	"github.com/iliyamo/coworking-space-booking/internal/handler"
	"github.com/iliyamo/coworking-space-booking/internal/logger"
	"github.com/iliyamo/coworking-space-booking/internal/middleware"
	"github.com/iliyamo/coworking-space-booking/internal/queue"
	"github.com/iliyamo/coworking-space-booking/internal/repository"
	"github.com/iliyamo/coworking-space-booking/internal/router"
	"github.com/iliyamo/coworking-space-booking/internal/service"
	"github.com/iliyamo/coworking-space-booking/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	cfg := config.Load() // Load environment config
	lg := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// MySQL
	db, err := database.Open(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Redis is optional: without it drafts live in memory and cache/rate limit are off.
	redisCfg := config.LoadRedisConfig()
	rdb, err := config.NewRedisClient(ctx, redisCfg)
	var drafts repository.DraftStore
	if err != nil {
		lg.Warn("redis unavailable, using in-memory drafts", "err", err)
		drafts = repository.NewMemoryDraftStore(cfg.DraftTTL)
	} else {
		defer rdb.Close()
		drafts = repository.NewRedisDraftStore(rdb, redisCfg.Prefix, cfg.DraftTTL)
	}

	seats, err := cfg.Seats.Catalog()
	if err != nil {
		log.Fatalf("seat config: %v", err)
	}
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL(), cfg.IsProd())
	publisher := service.NewRabbitPublisher(cfg.RabbitURL, lg.With("component", "publisher"))

	consumer := &queue.BookingConsumer{URL: cfg.RabbitURL, Dir: cfg.BookingLogDir, Log: lg.With("component", "booking-consumer")}
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			lg.Error("booking consumer stopped", "err", err)
		}
	}()

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowCredentials: true, AllowOriginFunc: func(string) (bool, error) { return true, nil }}))
	e.Use(middleware.RequestLogger(lg))
	e.Use(middleware.LoadSession(sessions, lg))
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb, lg))

	users := repository.NewUserRepo(db)
	router.RegisterRoutes(e, handler.NewHealthHandler(users))
	router.RegisterUsers(e, handler.NewUserHandler(users))
	router.RegisterCatalog(e, handler.NewCatalogHandler(), middleware.ResponseCache(config.LoadCacheConfig(), rdb, lg))
	router.RegisterSession(e, handler.NewSessionHandler(sessions, drafts, seats, lg))
	router.RegisterBooking(e, handler.NewBookingHandler(seats, drafts, publisher, lg))

	addr := ":" + cfg.Port
	go func() {
		lg.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", "err", err)
	}
	lg.Info("server stopped")
}
