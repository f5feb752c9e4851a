package credit_card

import (
	"context"

	"checkout/internal/entities"
	"checkout/pkg/logger"
)

type Processor struct {
	log handlerLogger
}

func New(log handlerLogger) *Processor {
	return &Processor{
		log: log.Named(logger.ChannelPaymentMethod),
	}
}

// Process всегда успешен: списание с карты не моделируется.
func (p *Processor) Process(_ context.Context, order *entities.Order) bool {
	p.log.Info("processing credit card payment",
		logger.NewField("customer", order.CustomerName),
	)
	return true
}
