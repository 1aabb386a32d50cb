package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-dictation/internal/adapter/cache"
	"github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres"
	attemptrepo "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres/attempt"
	masteryrepo "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres/mastery"
	phraserepo "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres/phrase"
	"github.com/heartmarshall/myenglish-dictation/internal/auth"
	"github.com/heartmarshall/myenglish-dictation/internal/config"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/observe"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation"
	"github.com/heartmarshall/myenglish-dictation/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-dictation/internal/transport/rest"
)

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// everything down within the configured shutdown timeout.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	logger.Info("starting dictation service",
		slog.String("build", BuildVersion()),
		slog.String("cache_driver", cfg.Cache.Driver),
	)

	provider, err := observe.InitProvider(observe.ProviderConfig{
		ServiceName:    serviceName,
		ServiceVersion: Version,
	})
	if err != nil {
		return fmt.Errorf("init metrics provider: %w", err)
	}
	defer shutdownWithTimeout(logger, "metrics provider", cfg.Server.ShutdownTimeout, provider.Shutdown)

	metrics, err := observe.NewMetrics(provider.MeterProvider)
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	phrases, cachePinger, closeCache, err := newPhraseCache(ctx, cfg.Cache, metrics, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	svc := dictation.NewService(
		logger,
		phraserepo.New(pool),
		attemptrepo.New(pool),
		masteryrepo.New(pool),
		phrases,
		postgres.NewTxManager(pool),
		metrics,
		serviceConfig(cfg.Dictation),
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	health := rest.NewHealthHandler(dbPinger(pool), nil, BuildVersion())
	if cachePinger != nil {
		health = rest.NewHealthHandler(dbPinger(pool), cachePinger, BuildVersion())
	}

	deps := routerDeps{
		dictation: rest.NewDictationHandler(svc, cfg.Server.MaxBodyBytes, logger),
		phrases:   rest.NewPhraseHandler(svc, cfg.Server.MaxBodyBytes, logger),
		health:    health,
		metrics:   metrics,
		auth:      middleware.Auth(jwtManager),
		cors:      cfg.CORS,
		log:       logger,
	}
	if cfg.Metrics.Enabled {
		deps.metricsHandler = provider.Handler()
		deps.metricsPath = cfg.Metrics.Path
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		deps.scoringLimit = limiter.Limit(cfg.RateLimit.ScoringPerMin)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("dictation service stopped")
	return nil
}

// newPhraseCache builds the configured phrase cache. For Redis it also
// returns a pinger for the readiness check. The returned close func is
// always non-nil.
func newPhraseCache(
	ctx context.Context,
	cfg config.CacheConfig,
	metrics *observe.Metrics,
	logger *slog.Logger,
) (phraseStore, rest.PingFunc, func(), error) {
	switch cfg.Driver {
	case config.CacheDriverRedis:
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Warn("close redis client", slog.String("error", err.Error()))
			}
		}
		return cache.NewRedisPhraseCache(client, cfg.PhraseTTL), redisPinger(client), closeFn, nil

	default:
		pc := cache.NewPhraseCache(cfg.PhraseTTL)
		sweeper, err := NewSweeper(pc, cfg.SweepInterval, metrics, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		sweeper.Start()
		return pc, nil, sweeper.Stop, nil
	}
}

func serviceConfig(c config.DictationConfig) dictation.Config {
	return dictation.Config{
		MaxInputLength:     c.MaxInputLength,
		MaxReferenceLength: c.MaxReferenceLength,
		HistoryMaxLimit:    c.HistoryMaxLimit,
		MasteryWorkers:     c.MasteryWorkers,
		MasteryTimeout:     c.MasteryTimeout,
	}
}

type phraseStore interface {
	Get(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, bool, error)
	Set(ctx context.Context, p domain.ReferencePhrase) error
	Delete(ctx context.Context, id uuid.UUID, language string) error
}

func dbPinger(pool *pgxpool.Pool) rest.PingFunc {
	return pool.Ping
}

func redisPinger(client *redis.Client) rest.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

func shutdownWithTimeout(logger *slog.Logger, name string, timeout time.Duration, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		logger.Error("shutdown failed", slog.String("component", name), slog.String("error", err.Error()))
	}
}
