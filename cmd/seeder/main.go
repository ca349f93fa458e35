package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"huduma_finder/internal/adapters/observability"
	"huduma_finder/internal/domain"
	"huduma_finder/internal/shared"
	mysqlrepo "huduma_finder/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.Workers).
		Int("providers", len(seedProviders)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, p := range seedProviders {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(p domain.Provider) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertProvider(ctx, p); err != nil {
				log.Warn().Str("id", p.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("id", p.ID).Str("service", p.ServiceType).Msg("seed ok")
		}(p)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
