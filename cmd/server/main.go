package main

import (
	"context"

	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/swiftpay/swiftpay/cmd/httpserver"
	"github.com/swiftpay/swiftpay/db/migration"
	"github.com/swiftpay/swiftpay/internal/middleware"
	"github.com/swiftpay/swiftpay/pkg/configpkg"
	"github.com/swiftpay/swiftpay/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	goose.SetBaseFS(migration.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal().Err(err).Msg("cannot set migration dialect")
	}

	if err := goose.Up(conn, "."); err != nil {
		logger.Fatal().Err(err).Msg("cannot apply migrations")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	scheduler := startStatsSnapshots(server, logger, config.StatsSnapshotSpec)
	defer scheduler.Stop()

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

// startStatsSnapshots periodically logs system-wide statistics so operators
// can track money supply drift without hitting the API.
func startStatsSnapshots(server *httpserver.Server, logger zerolog.Logger, spec string) *cron.Cron {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(spec, func() {
		ctx := logger.WithContext(context.Background())

		stats, err := server.Stats.Compute(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("stats snapshot failed")
			return
		}

		logger.Info().
			Int64("total_users", stats.TotalUsers).
			Int64("total_agents", stats.TotalAgents).
			Int64("total_transactions", stats.TotalTransactions).
			Str("system_total_money", stats.SystemTotalMoney).
			Msg("stats snapshot")
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot schedule stats snapshot")
	}

	scheduler.Start()

	return scheduler
}
