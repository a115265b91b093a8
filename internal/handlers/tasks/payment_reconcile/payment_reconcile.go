package payment_reconcile

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	ReconcileUnconfirmed(ctx context.Context) (int64, error)
}

// PaymentReconcile периодически сверяет зависшие intent'ы со шлюзом:
// подстраховка на случай потерянного события подтверждения.
type PaymentReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPaymentReconcile(log logger.Logger, service Service, interval time.Duration) *PaymentReconcile {
	return &PaymentReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PaymentReconcile) TTL() time.Duration {
	return p.interval
}

func (p *PaymentReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	confirmed, err := p.service.ReconcileUnconfirmed(ctxWithTimeout)

	if confirmed > 0 {
		p.log.With(
			logger.NewField("confirmed_orders", confirmed),
		).Info("payment reconcile")
	}

	return err
}

func (p *PaymentReconcile) Info() string {
	return "payment reconcile"
}
