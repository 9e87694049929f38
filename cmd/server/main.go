package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"client-scheduler/internal/auth"
	"client-scheduler/internal/config"
	"client-scheduler/internal/handler"
	"client-scheduler/internal/middleware"
	"client-scheduler/internal/store"
	"client-scheduler/internal/store/migrations"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()

	// database
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}
	logger.Info("connected to postgres")

	if err := runMigrations(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrations", zap.Error(err))
	}
	logger.Info("migrations applied")

	st := store.New(pool, cfg.Actor)

	sink, err := auth.NewFileSink(cfg.AuditLog)
	if err != nil {
		logger.Fatal("audit sink", zap.Error(err))
	}
	defer sink.Close()

	authn := auth.NewAuthenticator(st, auth.VerifierFor(cfg.AuthScheme), sink, logger)
	h := handler.New(st, authn, cfg.JWTSecret, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	h.Register(r, middleware.NewRateLimiter(cfg.LoginRPS, cfg.LoginBurst))

	srv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// runMigrations applies the embedded schema through goose, which wants a
// database/sql handle rather than a pgx pool.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
