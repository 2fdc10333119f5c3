package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/katedeng/photo-share-app/internal/config"
	"github.com/katedeng/photo-share-app/internal/db"
	"github.com/katedeng/photo-share-app/internal/server"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig   func() config.Config
	connectMongo func(config.Config) (*mongo.Database, error)
	connectRedis func(config.Config) *redis.Client
	notify       func(chan<- os.Signal, ...os.Signal)
	run          func(context.Context, config.Config, *mongo.Database, *redis.Client, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig:   config.Load,
		connectMongo: db.ConnectMongo,
		connectRedis: db.ConnectRedis,
		notify:       signal.Notify,
		run:          Run,
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	// Every route needs the document store, so a failed connection is
	// fatal rather than a degraded start.
	database, err := deps.connectMongo(cfg)
	if err != nil {
		zero.Error().Err(err).Msg("mongo connection failed")
		return
	}
	zero.Info().Str("database", cfg.MongoDatabase).Msg("connected to mongo")

	rdb := deps.connectRedis(cfg)
	if rdb == nil {
		zero.Warn().Msg("redis not configured, sessions are process-local")
	}

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	zero.Info().Str("addr", cfg.ServerPort).Msg("starting server")
	if err := deps.run(context.Background(), cfg, database, rdb, signals, nil); err != nil {
		zero.Error().Err(err).Msg("server exited with error")
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, database *mongo.Database, rdb *redis.Client, signals <-chan os.Signal, listen ListenFunc) error {
	srv := server.NewServer(cfg, database, rdb)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdownFn(srv.App, shutdownCtx); err != nil {
		return err
	}
	if database != nil {
		_ = database.Client().Disconnect(context.Background())
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	return nil
}
