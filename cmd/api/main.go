package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "huduma_finder/internal/adapters/http_server"
	"huduma_finder/internal/adapters/observability"
	"huduma_finder/internal/adapters/osm"
	redisad "huduma_finder/internal/adapters/redis"
	"huduma_finder/internal/app"
	"huduma_finder/internal/shared"
	mysqlrepo "huduma_finder/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// collaborators
	directory := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := redisad.NewSessionStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, int(cfg.SessionTTL.Seconds()))

	geocoder := osm.NewNominatim(cfg.NominatimBase, cfg.OSMUserAgent, cfg.GeocodeBias, cfg.OSMClientRPS, log.Logger)
	overpass := osm.NewOverpass(osm.OverpassConfig{
		BaseURL:    cfg.OverpassBase,
		UserAgent:  cfg.OSMUserAgent,
		RPS:        cfg.OSMClientRPS,
		TZSPerUSD:  cfg.TZSPerUSD,
		MaxResults: cfg.MaxCandidates,
	}, log.Logger)

	// engine
	bands := app.BudgetBands{LowMax: cfg.BudgetLowMax, MidMax: cfg.BudgetMidMax, PremiumCap: cfg.BudgetPremiumCap}
	resolver := app.NewResolver(app.DefaultGazetteer(), geocoder, cache, int(cfg.CacheTTL.Seconds()))
	source := app.NewChainedSource(overpass, directory)
	search := app.NewSearchService(source, app.SearchConfig{
		DefaultRadiusKm: cfg.SearchRadiusKm,
		BroadenFactor:   cfg.BroadenFactor,
		MaxCandidates:   cfg.MaxCandidates,
	})
	engine := app.NewEngine(resolver, search, app.DefaultServiceMatcher(), app.NewFormatter(bands, cfg.PageSize), bands)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Engine: engine, Sessions: sessions})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
