// Package app wires configuration, storage and services into runnable
// components.
package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/mkalvans/football-stats/internal/config"
	"github.com/mkalvans/football-stats/internal/domain/card"
	"github.com/mkalvans/football-stats/internal/domain/goal"
	"github.com/mkalvans/football-stats/internal/domain/match"
	"github.com/mkalvans/football-stats/internal/domain/player"
	"github.com/mkalvans/football-stats/internal/domain/referee"
	"github.com/mkalvans/football-stats/internal/domain/substitution"
	"github.com/mkalvans/football-stats/internal/domain/team"
	"github.com/mkalvans/football-stats/internal/infrastructure/repository/memory"
	"github.com/mkalvans/football-stats/internal/infrastructure/repository/postgres"
	"github.com/mkalvans/football-stats/internal/interfaces/httpapi"
	"github.com/mkalvans/football-stats/internal/platform/logging"
	"github.com/mkalvans/football-stats/internal/usecase"

	_ "github.com/lib/pq"
)

// Components bundles the wired services plus the database handle that must
// be closed on exit.
type Components struct {
	Ingest        *usecase.IngestService
	Matches       *usecase.MatchService
	Standings     *usecase.StandingsService
	TopScorers    *usecase.TopScorersService
	Substitutions *usecase.SubstitutionService
	PopularGoals  *usecase.PopularGoalsService
	Stats         *usecase.StatsService

	db *sqlx.DB
}

func (c *Components) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// NewComponents builds the service graph. An empty DB_URL selects the
// in-memory store, which keeps the loader and tests free of a database.
func NewComponents(cfg config.Config, logger *logging.Logger) (*Components, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		db          *sqlx.DB
		matchStore  usecase.MatchStore
		teamRepo    team.Repository
		playerRepo  player.Repository
		refereeRepo referee.Repository
		matchRepo   match.Repository
		goalRepo    goal.Repository
		cardRepo    card.Repository
		subRepo     substitution.Repository
	)

	if cfg.DBURL == "" {
		logger.Info("storage selected", "backend", "memory")

		store := memory.NewStore()
		matchStore = store
		teamRepo = store.TeamRepository()
		playerRepo = store.PlayerRepository()
		refereeRepo = store.RefereeRepository()
		matchRepo = store.MatchRepository()
		goalRepo = store.GoalRepository()
		cardRepo = store.CardRepository()
		subRepo = store.SubstitutionRepository()
	} else {
		conn, err := otelsqlx.Connect("postgres",
			cfg.DBURL,
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		logger.Info("storage selected", "backend", "postgres", "db_name", dbNameFromURL(cfg.DBURL))

		db = conn
		matchStore = postgres.NewStore(conn)
		teamRepo = postgres.NewTeamRepository(conn)
		playerRepo = postgres.NewPlayerRepository(conn)
		refereeRepo = postgres.NewRefereeRepository(conn)
		matchRepo = postgres.NewMatchRepository(conn)
		goalRepo = postgres.NewGoalRepository(conn)
		cardRepo = postgres.NewCardRepository(conn)
		subRepo = postgres.NewSubstitutionRepository(conn)
	}

	standingsSvc := usecase.NewStandingsService(teamRepo, matchRepo, goalRepo)
	scorersSvc := usecase.NewTopScorersService(goalRepo, playerRepo, teamRepo)
	subsSvc := usecase.NewSubstitutionService(subRepo, playerRepo, teamRepo)
	popularSvc := usecase.NewPopularGoalsService(goalRepo, matchRepo, playerRepo, teamRepo)

	return &Components{
		Ingest:        usecase.NewIngestService(matchStore, logger),
		Matches:       usecase.NewMatchService(matchRepo, teamRepo, playerRepo, refereeRepo, goalRepo, cardRepo, subRepo),
		Standings:     standingsSvc,
		TopScorers:    scorersSvc,
		Substitutions: subsSvc,
		PopularGoals:  popularSvc,
		Stats:         usecase.NewStatsService(standingsSvc, scorersSvc, subsSvc, popularSvc),
		db:            db,
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *Components, error) {
	if logger == nil {
		logger = logging.Default()
	}

	components, err := NewComponents(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(
		components.Ingest,
		components.Matches,
		components.Standings,
		components.TopScorers,
		components.Substitutions,
		components.PopularGoals,
		components.Stats,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = components.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, components, nil
}
