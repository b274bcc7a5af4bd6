//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"waterboys/internal/handlers/rest/cancel_order_post"
	"waterboys/internal/handlers/rest/login_post"
	"waterboys/internal/handlers/rest/logout_post"
	"waterboys/internal/handlers/rest/my_delivery_get"
	"waterboys/internal/handlers/rest/stats_get"
	"waterboys/internal/handlers/rest/take_order_post"
	"waterboys/internal/handlers/rest/validate_order_post"
	"waterboys/internal/handlers/tasks/stats_refresh"
	"waterboys/internal/pkg/config"
	authmw "waterboys/internal/pkg/middlewares/auth"
	"waterboys/internal/pkg/token"

	orderRepo "waterboys/internal/repository/order"
	sessionRepo "waterboys/internal/repository/session"
	userRepo "waterboys/internal/repository/user"
	authService "waterboys/internal/service/auth"
	deliveryService "waterboys/internal/service/delivery"
	orderService "waterboys/internal/service/order"

	"waterboys/pkg/background"
	"waterboys/pkg/logger"
	"waterboys/pkg/querier"
	"waterboys/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	StatsRefreshInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceOrder      ServiceOrder
	ServiceAuth       ServiceAuth
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	take_order_post.Service
	validate_order_post.Service
	cancel_order_post.Service
}

type ServiceOrder interface {
	my_delivery_get.Service
	stats_get.Service
}

type ServiceAuth interface {
	login_post.Service
	logout_post.Service
	authmw.Authenticator
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsRefreshInterval,

		provideOrderRepository,
		provideUserRepository,
		provideSessionStore,
		provideTokenIssuer,

		provideServiceDelivery,
		provideServiceOrder,
		provideServiceAuth,

		provideStatsRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),

		wire.Bind(new(deliveryService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(authService.SessionStore), new(*sessionRepo.Store)),
		wire.Bind(new(authService.TokenIssuer), new(*token.Issuer)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stats_refresh.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideSessionStore(redisClient *redis.Client) *sessionRepo.Store {
	return sessionRepo.New(redisClient)
}

func provideTokenIssuer(cfg *config.Config) *token.Issuer {
	return token.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, txManager)
}

func provideServiceOrder(repository orderService.Repository) *orderService.Service {
	return orderService.New(repository)
}

func provideServiceAuth(
	users authService.UserRepository,
	sessions authService.SessionStore,
	tokens authService.TokenIssuer,
) *authService.Auth {
	return authService.New(users, sessions, tokens)
}

func provideStatsRefreshInterval(cfg *config.Config) StatsRefreshInterval {
	return StatsRefreshInterval(cfg.Tasks.StatsRefreshInterval)
}

func provideStatsRefreshTask(
	statsService stats_refresh.Service,
	interval StatsRefreshInterval,
) *stats_refresh.StatsRefresh {
	return stats_refresh.NewStatsRefresh(statsService, time.Duration(interval))
}

func provideTaskList(
	statsRefreshTask *stats_refresh.StatsRefresh,
) []background.Task {
	return []background.Task{
		statsRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
