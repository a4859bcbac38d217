package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "hotel_desk/internal/adapters/http_server"
	"hotel_desk/internal/adapters/observability"
	redisad "hotel_desk/internal/adapters/redis"
	"hotel_desk/internal/app"
	"hotel_desk/internal/cli"
	"hotel_desk/internal/domain"
	"hotel_desk/internal/shared"
	mysqljournal "hotel_desk/internal/storage/mysql"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	// logs go to stderr, the menu owns stdout
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// directories and engine
	rooms := app.NewRoomDirectory()
	rooms.Initialize()
	clients := app.NewClientDirectory()
	for _, name := range cfg.SeedClients {
		if _, err := clients.Create(name); err != nil {
			log.Warn().Err(err).Str("name", name).Msg("seed client skipped")
		}
	}
	engine := app.NewReservationEngine(rooms, clients)

	// journals
	var sinks app.MultiJournal
	if cfg.MySQLDSN != "" {
		octx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err := mysqljournal.Open(octx, cfg.MySQLDSN)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("mysql journal unavailable")
		}
		defer db.Close()
		sinks = append(sinks, mysqljournal.New(db))
		log.Info().Msg("mysql journal connected")
	}
	if cfg.RedisAddr != "" {
		rj := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisJournalKey, cfg.RedisJournalMax)
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := rj.Ping(pctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis journal unavailable")
		}
		defer rj.Close()
		sinks = append(sinks, rj)
		log.Info().Str("addr", cfg.RedisAddr).Str("key", cfg.RedisJournalKey).Msg("redis journal connected")
	}
	var journal domain.Journal
	switch len(sinks) {
	case 0:
	case 1:
		journal = sinks[0]
	default:
		journal = sinks
	}

	obs := observability.Desk{}
	obs.SetRooms(rooms.Counts())
	desk := app.NewFrontDesk(engine, rooms, journal, obs, cfg.JournalTimeout)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.OpsEnabled() {
		ops := server.New(log.Logger)
		ops.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
		g.Go(func() error { return ops.Run(gctx, cfg.OpsAddr) })
	}

	// the menu blocks on stdin, so it is not part of the group
	menuDone := make(chan error, 1)
	go func() { menuDone <- cli.New(os.Stdin, os.Stdout, rooms, clients, desk).Run(gctx) }()

	select {
	case err := <-menuDone:
		if err != nil {
			log.Error().Err(err).Msg("menu stopped")
		}
	case <-gctx.Done():
		log.Info().Msg("shutting down")
	}
	stop()

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("ops server failed")
	}
}
