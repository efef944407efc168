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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/threadboard/internal/adapter/cache"
	"github.com/heartmarshall/threadboard/internal/adapter/postgres"
	"github.com/heartmarshall/threadboard/internal/adapter/postgres/post"
	"github.com/heartmarshall/threadboard/internal/adapter/postgres/topic"
	"github.com/heartmarshall/threadboard/internal/config"
	"github.com/heartmarshall/threadboard/internal/render"
	"github.com/heartmarshall/threadboard/internal/service/board"
	"github.com/heartmarshall/threadboard/internal/transport/middleware"
	"github.com/heartmarshall/threadboard/internal/transport/rest"
)

// Components is the wired application graph shared by the HTTP server and
// the maintenance commands.
type Components struct {
	Config *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client // nil when the topic cache is disabled
	Cache  *cache.TopicCache
	Topics *topic.Repo
	Board  *board.Service
}

// Build connects to the database (and Redis, when configured) and
// constructs the repositories and the board service.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.CacheEnabled() {
		rdb, err = cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
	}

	c := &Components{
		Config: cfg,
		Log:    logger,
		Pool:   pool,
		Redis:  rdb,
	}
	c.wire()
	return c, nil
}

// NewComponents wires the graph on top of existing connections. rdb may be nil.
func NewComponents(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) *Components {
	c := &Components{Config: cfg, Log: logger, Pool: pool, Redis: rdb}
	c.wire()
	return c
}

func (c *Components) wire() {
	txm := postgres.NewTxManager(c.Pool)
	c.Topics = topic.New(c.Pool)
	posts := post.New(c.Pool)
	c.Cache = cache.NewTopicCache(c.Redis, c.Config.Redis.KeyPrefix, c.Config.Redis.TTL)

	c.Board = board.NewService(c.Log, boardConfig(c.Config.Board), c.Topics, posts, c.Cache, txm)
}

// Close releases the database pool and the Redis client.
func (c *Components) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	c.Pool.Close()
}

// Handler builds the HTTP handler: routes wrapped in the middleware chain.
func (c *Components) Handler(limiter *middleware.RateLimiter) http.Handler {
	health := rest.NewHealthHandler(c.Pool, c.cachePinger(), BuildVersion())
	boardHandler := rest.NewBoardHandler(c.Board, render.NewMarkdown(), c.Config.Board.DefaultPageSize, c.Log)
	router := rest.NewRouter(health, boardHandler)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(c.Log),
		middleware.Logger(c.Log),
		middleware.CORS(c.Config.CORS),
		limiter.LimitWrites(c.Config.RateLimit.RequestsPerMinute),
	)
	return chain(router)
}

// cachePinger returns nil when no cache is configured so /health omits it.
func (c *Components) cachePinger() interface{ Ping(context.Context) error } {
	if c.Redis == nil {
		return nil
	}
	return c.Cache
}

func boardConfig(cfg config.BoardConfig) board.Config {
	return board.Config{
		CapacityLimit:    cfg.CapacityLimit,
		MaxBodyLength:    cfg.MaxBodyLength,
		MaxTitleLength:   cfg.MaxTitleLength,
		MaxSummaryLength: cfg.MaxSummaryLength,
		LimitNotice:      cfg.LimitNotice,
		MaxPageSize:      cfg.MaxPageSize,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails. Shutdown waits up to cfg.Server.ShutdownTimeout for
// in-flight requests.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("cache", cfg.Redis.CacheEnabled()),
	)

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if cfg.Board.ReconcileOnStart {
		fixed, err := c.Board.ReconcileCounts(ctx)
		if err != nil {
			return fmt.Errorf("reconcile counts: %w", err)
		}
		logger.Info("startup reconciliation done", slog.Int64("fixed", fixed))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           c.Handler(limiter),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
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
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
