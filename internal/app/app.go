package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagerhall/internal/config"
	"github.com/GlebRadaev/wagerhall/internal/events"
	"github.com/GlebRadaev/wagerhall/internal/handlers"
	"github.com/GlebRadaev/wagerhall/internal/pg"
	"github.com/GlebRadaev/wagerhall/internal/repo"
	"github.com/GlebRadaev/wagerhall/internal/rollover"
	"github.com/GlebRadaev/wagerhall/internal/service"
	"github.com/GlebRadaev/wagerhall/pkg/auth"
	"github.com/GlebRadaev/wagerhall/pkg/logger"
	"github.com/GlebRadaev/wagerhall/pkg/ratelimit"
)

const (
	shutdownTimeout   = 5 * time.Second
	limiterSweepEvery = 10 * time.Minute
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	dispatcher *events.Dispatcher
	limiter    *ratelimit.Limiter
	rollover   *rollover.Service
	pool       *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg.LogLvl, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	publisher, err := getPublisher(ctx, cfg)
	if err != nil {
		zap.L().Error("event publisher failed: ", zap.Error(err))
		return fmt.Errorf("can't connect event publisher: %w", err)
	}

	a.cfg = cfg
	a.pool = pool
	hub := events.NewHub()
	a.dispatcher = events.NewDispatcher(events.Fanout{publisher, hub}, cfg.EventWorkers)
	a.limiter = ratelimit.New(cfg.PlaceRateLimit, cfg.PlaceRateBurst, handlers.AccountKey)
	a.repo = repo.New(pg.New(pool))
	a.srv = service.New(a.repo, txManager, a.dispatcher, loc)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), a.limiter, hub)

	if err = a.startRollover(ctx, loc); err != nil {
		return fmt.Errorf("can't start daily reset: %w", err)
	}
	a.startLimiterSweep(ctx)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("tz", loc.String()))
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func getPublisher(ctx context.Context, cfg *config.Config) (events.Publisher, error) {
	if cfg.RedisAddr == "" {
		zap.L().Info("REDIS_ADDR not set, events go to websocket subscribers only")
		return events.NopPublisher{}, nil
	}
	return events.NewRedisPublisher(ctx, events.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func (a *Application) startRollover(ctx context.Context, loc *time.Location) error {
	if a.cfg.DailyResetCron == "" {
		return nil
	}
	svc, err := rollover.New(a.cfg.DailyResetCron, loc, a.srv.MarketService)
	if err != nil {
		return err
	}
	if err := svc.Start(ctx); err != nil {
		return err
	}
	a.rollover = svc
	return nil
}

func (a *Application) startLimiterSweep(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.limiter.Run(ctx, limiterSweepEvery)
	}()
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		// Producers of events must be gone before the dispatcher closes.
		if a.rollover != nil {
			<-a.rollover.Stopped()
		}
		if err := a.dispatcher.Close(); err != nil {
			zap.L().Error("event publisher close failed", zap.Error(err))
		}
		a.pool.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
