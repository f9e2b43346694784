package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/a2sh3r/fundledger/internal/config"
	"github.com/a2sh3r/fundledger/internal/database"
	"github.com/a2sh3r/fundledger/internal/handlers"
	"github.com/a2sh3r/fundledger/internal/logger"
	"github.com/a2sh3r/fundledger/internal/repository"
	"github.com/a2sh3r/fundledger/internal/repository/memory"
	"github.com/a2sh3r/fundledger/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server *http.Server
	db     *sql.DB
}

type repositories struct {
	donations repository.DonationRepository
	finance   repository.FinanceRepository
	audit     repository.AuditRepository
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var (
		repos repositories
		db    *sql.DB
	)
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		var err error
		db, err = database.InitDB(ctx, cfg)
		if err != nil {
			logger.Log.Error("Database connection failed", zap.Error(err))
			return nil, err
		}
		repos = repositories{
			donations: repository.NewDonationRepository(db),
			finance:   repository.NewFinanceRepository(db),
			audit:     repository.NewAuditRepository(db),
		}
	case config.BackendMemory:
		store := memory.NewStore()
		repos = repositories{donations: store, finance: store, audit: store}
		logger.Log.Warn("using in-memory storage, data is lost on restart")
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	handler := handlers.NewHandler(
		service.NewDonationService(repos.donations, repos.finance),
		service.NewFinanceService(repos.finance),
		service.NewReportService(repos.donations, repos.finance, repos.audit),
		cfg.HashKey,
	)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: handlers.NewRouter(handler, cfg),
	}

	return &App{
		server: server,
		db:     db,
	}, nil
}

// Run serves in the background. A listen failure is reported on the returned channel.
func (a *App) Run() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("starting server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", zap.Error(err))
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

func (a *App) Shutdown(ctx context.Context) error {
	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(ctx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	if a.db == nil {
		return nil
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
