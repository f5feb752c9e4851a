package declined

import (
	"context"

	"checkout/internal/entities"
	"checkout/pkg/logger"
)

// Processor отклоняет любую оплату. Нужен, чтобы прогнать ветку отказа в checkout.
type Processor struct {
	log handlerLogger
}

func New(log handlerLogger) *Processor {
	return &Processor{
		log: log.Named(logger.ChannelPaymentMethod),
	}
}

func (p *Processor) Process(_ context.Context, order *entities.Order) bool {
	p.log.Info("payment declined",
		logger.NewField("customer", order.CustomerName),
	)
	return false
}
