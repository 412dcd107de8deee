package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/eapache/go-resiliency/retrier"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/henriqueacribeiro/invenhelper/config"
	"github.com/henriqueacribeiro/invenhelper/controllers"
	"github.com/henriqueacribeiro/invenhelper/repository"
	"github.com/henriqueacribeiro/invenhelper/service"
	"github.com/henriqueacribeiro/invenhelper/web"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mainCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Get(logger)
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	dbConf, err := pgxpool.ParseConfig(cfg.Database.URI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse database config")
		return
	}

	pool, err := pgxpool.NewWithConfig(mainCtx, dbConf)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
		return
	}
	defer pool.Close()

	retry := retrier.New(retrier.ConstantBackoff(cfg.Database.ConnectTries, cfg.Database.ConnectTimeout), nil)
	err = retry.RunCtx(mainCtx, pool.Ping)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to reach database")
		return
	}

	db := stdlib.OpenDBFromPool(pool)

	err = goose.SetDialect("postgres")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set postgres dialect")
		return
	}

	err = goose.Up(db, "cmd/changelog")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
		return
	}

	conn := trmpgx.DefaultCtxGetter.DefaultTrOrDB(mainCtx, pool)

	productRepo := repository.NewProductRepository(conn)
	userRepo := repository.NewUserRepository(conn)

	userService := service.NewUserService(userRepo, logger)
	productService := service.NewProductService(productRepo, userService, logger)

	server, err := web.New(logger, cfg.Server.RESTPort,
		controllers.NewProductController(productService),
		controllers.NewUserController(userService))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build HTTP server")
		return
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			logger.Error().Err(err).Msg("HTTP server stopped")
			cancel()
		}
	}()

	<-mainCtx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down HTTP server")
	}
}
