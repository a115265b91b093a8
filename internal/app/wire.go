//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	stripeGateway "service/internal/gateway/stripe"
	"service/internal/handlers/rest/login_post"
	"service/internal/handlers/rest/order_delete"
	"service/internal/handlers/rest/order_get"
	"service/internal/handlers/rest/order_pay_post"
	"service/internal/handlers/rest/order_post"
	"service/internal/handlers/rest/order_put"
	"service/internal/handlers/rest/orders_assigned_get"
	"service/internal/handlers/rest/orders_get"
	"service/internal/handlers/rest/profile_get"
	"service/internal/handlers/rest/profile_put"
	"service/internal/handlers/rest/register_post"
	"service/internal/handlers/rest/token_refresh_post"
	"service/internal/handlers/rest/user_delete"
	"service/internal/handlers/rest/user_get"
	"service/internal/handlers/rest/user_post"
	"service/internal/handlers/rest/user_put"
	"service/internal/handlers/rest/users_get"
	"service/internal/handlers/tasks/payment_reconcile"
	"service/internal/pkg/config"
	"service/internal/pkg/middlewares/auth"

	accountRepo "service/internal/repository/account"
	orderRepo "service/internal/repository/order"
	accountService "service/internal/service/account"
	orderService "service/internal/service/order"
	paymentService "service/internal/service/payment"

	"service/pkg/authtoken"
	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
	ReconcileAge      time.Duration
)

type Application struct {
	ServiceAccount    ServiceAccount
	ServiceOrder      ServiceOrder
	ServicePayment    ServicePayment
	AuthMiddleware    func(http.Handler) http.Handler
	BackgroundWorkers *background.Worker
}

type ServiceAccount interface {
	register_post.Service
	login_post.Service
	token_refresh_post.Service
	profile_get.Service
	profile_put.Service
	user_post.Service
	users_get.Service
	user_get.Service
	user_put.Service
	user_delete.Service
}

type ServiceOrder interface {
	order_post.OrderService
	orders_get.Service
	order_get.Service
	order_put.Service
	order_delete.Service
	orders_assigned_get.Service
}

type ServicePayment interface {
	order_pay_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,
		provideReconcileAge,

		provideAccountRepository,
		provideOrderRepository,

		provideTokenManager,
		provideStripeGateway,

		provideServiceAccount,
		provideServiceOrder,
		provideServicePayment,

		provideAuthMiddleware,

		providePaymentReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAccount), new(*accountService.Account)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(accountService.Tokens), new(*authtoken.Manager)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AccountReader), new(*accountRepo.Repository)),
		wire.Bind(new(paymentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.Gateway), new(*stripeGateway.Gateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(payment_reconcile.Service), new(*paymentService.Payment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Payment
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileAge,

		provideOrderRepository,
		provideStripeGateway,
		provideServicePayment,

		wire.Bind(new(paymentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.Gateway), new(*stripeGateway.Gateway)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

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

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTokenManager(cfg *config.Config) *authtoken.Manager {
	return authtoken.New(authtoken.Config{
		Secret:     cfg.Auth.JWTSecret,
		AccessTTL:  cfg.Auth.AccessTTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
	})
}

func provideStripeGateway(cfg *config.Config) *stripeGateway.Gateway {
	return stripeGateway.New(stripeGateway.Config{
		APIKey:      cfg.Stripe.APIKey,
		BaseURL:     cfg.Stripe.BaseURL,
		CallTimeout: cfg.Stripe.CallTimeout,
	})
}

func provideServiceAccount(
	repository accountService.Repository,
	tokens accountService.Tokens,
) *accountService.Account {
	return accountService.New(repository, tokens)
}

func provideServiceOrder(
	repository orderService.Repository,
	accounts orderService.AccountReader,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, accounts, txManager)
}

func provideServicePayment(
	orders paymentService.OrderRepository,
	gateway paymentService.Gateway,
	txManager paymentService.TxManager,
	reconcileAge ReconcileAge,
) *paymentService.Payment {
	return paymentService.New(orders, gateway, txManager, time.Duration(reconcileAge))
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.PaymentsReconcileInterval)
}

func provideReconcileAge(cfg *config.Config) ReconcileAge {
	return ReconcileAge(cfg.Tasks.PaymentsReconcileAge)
}

func provideAuthMiddleware(
	log logger.Logger,
	manager *authtoken.Manager,
	accounts *accountRepo.Repository,
) func(http.Handler) http.Handler {
	return auth.Middleware(log, manager, accounts)
}

func providePaymentReconcileTask(
	log logger.Logger,
	paymentService payment_reconcile.Service,
	interval ReconcileInterval,
) *payment_reconcile.PaymentReconcile {
	return payment_reconcile.NewPaymentReconcile(log, paymentService, time.Duration(interval))
}

func provideTaskList(
	paymentReconcileTask *payment_reconcile.PaymentReconcile,
) []background.Task {
	return []background.Task{
		paymentReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
