//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"checkout/internal/entities"
	"checkout/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
	Named(name string) logger.Logger
}

// PaymentProcessor проводит оплату заказа. false означает отказ в оплате.
type PaymentProcessor interface {
	Process(ctx context.Context, order *entities.Order) bool
}

// NotificationService уведомляет клиента об оплаченном заказе.
type NotificationService interface {
	Send(ctx context.Context, order *entities.Order)
}
