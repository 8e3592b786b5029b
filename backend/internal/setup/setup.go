package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/itchan-dev/msgboard/backend/internal/handler"
	"github.com/itchan-dev/msgboard/backend/internal/render"
	"github.com/itchan-dev/msgboard/backend/internal/service"
	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/backend/internal/storage/memory"
	"github.com/itchan-dev/msgboard/backend/internal/storage/pg"
	"github.com/itchan-dev/msgboard/backend/internal/storage/sqlite"
	"github.com/itchan-dev/msgboard/backend/internal/utils"
	"github.com/itchan-dev/msgboard/shared/config"
	jwt_internal "github.com/itchan-dev/msgboard/shared/jwt"
	"github.com/itchan-dev/msgboard/shared/logger"
	mw "github.com/itchan-dev/msgboard/shared/middleware"
	"github.com/itchan-dev/msgboard/shared/middleware/ratelimiter"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        storage.Storage
	Handler        *handler.Handler
	Jwt            jwt_internal.JwtService
	AuthMiddleware *mw.Auth
	CreateLimiter  *ratelimiter.UserRateLimiter
}

// NewStorage opens the engine selected by cfg.Public.Storage.Driver.
func NewStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Public.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverPostgres:
		return pg.New(ctx, cfg)
	case config.DriverSqlite:
		return sqlite.Open(ctx, cfg.Public.Storage.SqlitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Public.Storage.Driver)
	}
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	store, err := NewStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("storage ready", "driver", cfg.Public.Storage.Driver)

	jwt := jwt_internal.New(cfg.JwtKey(), cfg.JwtTTL())

	board := service.NewBoard(store)
	message := service.NewMessage(store, utils.New())
	h := handler.New(board, message, render.New(), store)

	return &Dependencies{
		Config:         cfg,
		Storage:        store,
		Handler:        h,
		Jwt:            jwt,
		AuthMiddleware: mw.NewAuth(jwt, cfg.Public.SecureCookies),
		CreateLimiter:  ratelimiter.New(cfg.Public.CreateRateLimit, cfg.Public.CreateRateBurst, time.Hour),
	}, nil
}

// Close releases the storage engine and background workers.
func (d *Dependencies) Close() error {
	d.CreateLimiter.Stop()
	return d.Storage.Cleanup()
}
