package main

import (
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"talent_reviews/internal/adapters/marketplace"
	"talent_reviews/internal/adapters/observability"
	redisad "talent_reviews/internal/adapters/redis"
	"talent_reviews/internal/app"
	"talent_reviews/internal/shared"
	mysqlrepo "talent_reviews/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if len(cfg.FreelancerIDs) == 0 {
		log.Fatal().Msg("no freelancer ids configured (FREELANCER_IDS or freelancer_ids)")
	}

	log.Info().
		Str("base", cfg.MarketplaceBase).
		Int("workers", cfg.Workers).
		Int("reviews", cfg.ReviewCount).
		Int("freelancers", len(cfg.FreelancerIDs)).
		Msg("importer starting")

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := marketplace.New(cfg.MarketplaceBase, cfg.MarketplaceKey, cfg.MarketplaceRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize marketplace client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

	imp := app.NewImportService(client, repo, cache)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)

	for _, id := range cfg.FreelancerIDs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("import interrupted")
			break
		}

		wg.Add(1)
		go func(freelancerID int64) {
			defer wg.Done()
			defer sem.Release(1)

			if err := imp.ImportFreelancer(ctx, freelancerID, cfg.ReviewCount); err != nil {
				failed.Add(1)
				log.Warn().Int64("id", freelancerID).Err(err).Msg("import failed")
				return
			}
			log.Info().Int64("id", freelancerID).Msg("import ok")
		}(id)
	}

	wg.Wait()
	log.Info().Int64("failed", failed.Load()).Msg("import completed")
}
