package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesdesk/sales-api/internal/api"
	"github.com/salesdesk/sales-api/internal/api/handler"
	"github.com/salesdesk/sales-api/internal/core/service"
	"github.com/salesdesk/sales-api/internal/core/token"
	mongostore "github.com/salesdesk/sales-api/internal/infrastructure/db/mongo"
	"github.com/salesdesk/sales-api/internal/infrastructure/db/postgres"
	redisstore "github.com/salesdesk/sales-api/internal/infrastructure/db/redis"
	"github.com/salesdesk/sales-api/internal/infrastructure/queue"
	"github.com/salesdesk/sales-api/internal/infrastructure/security"
	"github.com/salesdesk/sales-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logger.Get()

		db, err := postgres.Open(ctx, postgres.Config{
			DSN:          cfg.Postgres.DSN,
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer db.Close()

		client, mdb, err := mongostore.Connect(ctx, mongostore.Config{
			URI:         cfg.Mongo.URI,
			Database:    cfg.Mongo.Database,
			MaxPoolSize: cfg.Mongo.MaxPoolSize,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to mongo: %w", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := mongostore.EnsureIndexes(ctx, mdb); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer rdb.Close()

		log.Info().Msg("connected to postgres, mongo and redis")

		// The pool outlives the signal context so in-flight logins finish
		// during graceful shutdown.
		pool := queue.NewPool(cfg.HashWorkers, logger.Component("hashpool"))
		pool.Start(context.Background())
		defer pool.Stop()

		tokens, err := token.NewManager(cfg.JWTSecret)
		if err != nil {
			return err
		}
		hasher := security.NewBcryptHasher(cfg.BcryptCost, pool)

		// Repositories
		userRepo := postgres.NewUserRepository(db)
		roleRepo := postgres.NewRoleRepository(db)
		agentRepo := mongostore.NewAgentRepository(mdb)
		customerRepo := mongostore.NewCustomerRepository(mdb)
		orderRepo := mongostore.NewOrderRepository(mdb)

		// Services
		roles := service.NewRoleService(roleRepo)
		deps := api.Deps{
			Auth:      service.NewAuthService(userRepo, roles, hasher, tokens, tokens),
			Users:     service.NewUserService(userRepo, roles, hasher),
			Agents:    service.NewAgentService(agentRepo, logger.Component("agents")),
			Customers: service.NewCustomerService(customerRepo, agentRepo, logger.Component("customers")),
			Orders:    service.NewOrderService(orderRepo, customerRepo, agentRepo, logger.Component("orders")),

			LoginLimiter: redisstore.NewFixedWindowLimiter(rdb, cfg.RateLimit.Login, cfg.RateLimit.Window),
			Checks: map[string]handler.Checker{
				"postgres": db.PingContext,
				"mongo": func(ctx context.Context) error {
					return client.Ping(ctx, nil)
				},
				"redis": func(ctx context.Context) error {
					return rdb.Ping(ctx).Err()
				},
			},
			Logger: logger.Component("http"),
		}

		e := api.NewRouter(deps)

		serverErrors := make(chan error, 1)
		go func() {
			log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
			serverErrors <- e.Start(":" + cfg.Port)
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
			log.Info().Msg("shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info().Msg("server stopped")
		return nil
	},
}
