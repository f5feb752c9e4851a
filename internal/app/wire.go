//go:build wireinject
// +build wireinject

package app

import (
	"checkout/internal/gateway/notification/email"
	"checkout/internal/gateway/payment/credit_card"
	"checkout/internal/gateway/payment/qris"
	"checkout/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication собирает способы оплаты и уведомления для cmd/checkout
func InitializeApplication(log logger.Logger) *Application {
	wire.Build(
		provideEmailNotifier,
		provideCreditCardProcessor,
		provideQrisProcessor,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}
}

func provideEmailNotifier(log logger.Logger) *email.Notifier {
	return email.New(log)
}

func provideCreditCardProcessor(log logger.Logger) *credit_card.Processor {
	return credit_card.New(log)
}

func provideQrisProcessor(log logger.Logger) *qris.Processor {
	return qris.New(log)
}
