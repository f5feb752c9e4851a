package checkout

import (
	"context"

	"checkout/internal/entities"
	"checkout/pkg/logger"
)

// Service координирует один checkout: оплата, затем уведомление.
// Конкретные способы оплаты и уведомления подставляются снаружи,
// добавление нового способа оплаты не требует изменений здесь.
type Service struct {
	log              handlerLogger
	paymentProcessor PaymentProcessor
	notifier         NotificationService
}

func New(log handlerLogger, paymentProcessor PaymentProcessor, notifier NotificationService) *Service {
	return &Service{
		log:              log.Named(logger.ChannelCheckout),
		paymentProcessor: paymentProcessor,
		notifier:         notifier,
	}
}

// RunCheckout возвращает true, если оплата прошла. Только в этом случае
// заказ переводится в paid и отправляется уведомление.
func (s *Service) RunCheckout(ctx context.Context, order *entities.Order) bool {
	checkoutLog := s.log.With(
		logger.NewField("customer", order.CustomerName),
		logger.NewField("total", order.TotalPrice.String()),
	)

	checkoutLog.Info("starting checkout")

	if !s.paymentProcessor.Process(ctx, order) {
		CheckoutTotal.WithLabelValues(resultDeclined).Inc()
		checkoutLog.Error("payment failed, transaction cancelled",
			logger.NewField("error", ErrPaymentDeclined),
		)
		return false
	}

	order.Status = entities.OrderPaid
	s.notifier.Send(ctx, order)
	CheckoutNotificationsTotal.Inc()

	CheckoutTotal.WithLabelValues(resultPaid).Inc()
	checkoutLog.Info("checkout succeeded",
		logger.NewField("status", order.Status.String()),
	)
	return true
}
