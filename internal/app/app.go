// Package app assembles the storage layer, services and HTTP router
// into a runnable server.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/clubops/clubops/internal/config"
	"github.com/clubops/clubops/internal/domain/formation"
	"github.com/clubops/clubops/internal/domain/lineup"
	"github.com/clubops/clubops/internal/domain/match"
	"github.com/clubops/clubops/internal/domain/medical"
	"github.com/clubops/clubops/internal/domain/player"
	"github.com/clubops/clubops/internal/domain/roleslot"
	"github.com/clubops/clubops/internal/domain/scouting"
	"github.com/clubops/clubops/internal/domain/staff"
	"github.com/clubops/clubops/internal/domain/stats"
	"github.com/clubops/clubops/internal/domain/team"
	cacherepo "github.com/clubops/clubops/internal/infrastructure/repository/cache"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
	"github.com/clubops/clubops/internal/infrastructure/repository/postgres"
	"github.com/clubops/clubops/internal/interfaces/httpapi"
	basecache "github.com/clubops/clubops/internal/platform/cache"
	"github.com/clubops/clubops/internal/platform/logging"
	"github.com/clubops/clubops/internal/usecase"
)

// App owns the HTTP server and, in postgres mode, the DB handle.
type App struct {
	Server *http.Server

	db *sqlx.DB
}

type repositories struct {
	roleSlot  roleslot.Repository
	formation formation.Repository
	lineup    lineup.Repository
	player    player.Repository
	team      team.Repository
	match     match.Repository
	staff     staff.Repository
	medical   medical.Repository
	scouting  scouting.Repository
	stats     stats.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repos repositories
		db    *sqlx.DB
		err   error
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err = openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if cfg.SeedOnStart {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				closeErr := db.Close()
				if closeErr != nil {
					logger.Warn("close database after failed seed", "error", closeErr)
				}
				return nil, fmt.Errorf("bootstrap seed: %w", err)
			}
		}
		repos = postgresRepositories(db)
		logger.Info("storage ready", "driver", cfg.StorageDriver, "database", dbNameFromURL(cfg.DBURL))
	case config.StorageMemory:
		repos = memoryRepositories()
		logger.Info("storage ready", "driver", cfg.StorageDriver)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.roleSlot = cacherepo.NewRoleSlotRepository(repos.roleSlot, store)
		repos.formation = cacherepo.NewFormationRepository(repos.formation, store)
		logger.Info("catalog cache enabled", "ttl", cfg.CacheTTL)
	}

	formationSvc := usecase.NewFormationService(repos.formation, repos.roleSlot, repos.lineup)
	lineupSvc := usecase.NewLineupService(
		repos.lineup,
		repos.formation,
		repos.roleSlot,
		repos.player,
		repos.team,
		repos.match,
		logger,
	)
	playerSvc := usecase.NewPlayerService(repos.player, repos.medical, repos.stats)
	teamSvc := usecase.NewTeamService(repos.team)
	matchSvc := usecase.NewMatchService(repos.match)
	staffSvc := usecase.NewStaffService(repos.staff, repos.team)
	medicalSvc := usecase.NewMedicalService(repos.medical, repos.player)
	scoutingSvc := usecase.NewScoutingService(repos.scouting, repos.staff, repos.player)
	statsSvc := usecase.NewStatsService(repos.stats, repos.player, repos.match, repos.team)
	auditSvc := usecase.NewAuditService(repos.lineup, logger, cfg.AuditWorkers)

	handler := httpapi.NewHandler(
		formationSvc,
		lineupSvc,
		playerSvc,
		teamSvc,
		matchSvc,
		staffSvc,
		medicalSvc,
		scoutingSvc,
		statsSvc,
		auditSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

// Close releases resources the server does not own itself.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		roleSlot:  postgres.NewRoleSlotRepository(db),
		formation: postgres.NewFormationRepository(db),
		lineup:    postgres.NewLineupRepository(db),
		player:    postgres.NewPlayerRepository(db),
		team:      postgres.NewTeamRepository(db),
		match:     postgres.NewMatchRepository(db),
		staff:     postgres.NewStaffRepository(db),
		medical:   postgres.NewMedicalRepository(db),
		scouting:  postgres.NewScoutingRepository(db),
		stats:     postgres.NewStatsRepository(db),
	}
}

func memoryRepositories() repositories {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())

	return repositories{
		roleSlot:  memory.NewRoleSlotRepository(memory.SeedRoleSlots()),
		formation: memory.NewFormationRepository(memory.SeedFormations(), memory.SeedFormationOverrides()),
		lineup:    memory.NewLineupRepository(),
		player:    memory.NewPlayerRepository(memory.SeedPlayers()),
		team:      memory.NewTeamRepository(memory.SeedTeams()),
		match:     matchRepo,
		staff:     memory.NewStaffRepository(),
		medical:   memory.NewMedicalRepository(),
		scouting:  memory.NewScoutingRepository(),
		stats:     memory.NewStatsRepository(matchRepo),
	}
}
