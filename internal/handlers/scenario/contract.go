//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scenario_test
package scenario

import (
	"context"

	"checkout/internal/entities"
	"checkout/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Checkout interface {
	RunCheckout(ctx context.Context, order *entities.Order) bool
}
