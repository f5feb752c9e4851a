package app

import (
	"checkout/internal/gateway/notification/email"
	"checkout/internal/gateway/payment/credit_card"
	"checkout/internal/gateway/payment/qris"
	"checkout/internal/service/checkout"
	"checkout/pkg/logger"
)

// Application держит один notifier на все конфигурации checkout.
type Application struct {
	Log        logger.Logger
	Notifier   *email.Notifier
	CreditCard *credit_card.Processor
	Qris       *qris.Processor
}

// Checkout собирает координатор под конкретный способ оплаты.
func (a *Application) Checkout(paymentProcessor checkout.PaymentProcessor) *checkout.Service {
	return checkout.New(a.Log, paymentProcessor, a.Notifier)
}
