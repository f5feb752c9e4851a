package qris

import (
	"context"

	"checkout/internal/entities"
	"checkout/pkg/logger"
	"github.com/google/uuid"
)

// PayloadPrefix заголовок QRIS payload, за которым следует номер референса.
const PayloadPrefix = "00020101021226620015"

type ReferenceFunc func() string

// NewReference генерирует номер референса вида "A" + 10 символов uuid.
func NewReference() string {
	return "A" + uuid.New().String()[:10]
}

type Option func(*Processor)

func WithReferenceFunc(fn ReferenceFunc) Option {
	return func(p *Processor) {
		p.newReference = fn
	}
}

type Processor struct {
	log          handlerLogger
	newReference ReferenceFunc
}

func New(log handlerLogger, opts ...Option) *Processor {
	p := &Processor{
		log:          log.Named(logger.ChannelPaymentMethod),
		newReference: NewReference,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process всегда успешен. Референс и payload только логируются, QR никуда не отправляется.
func (p *Processor) Process(_ context.Context, order *entities.Order) bool {
	reference := p.newReference()

	p.log.Info("processing QRIS payment",
		logger.NewField("customer", order.CustomerName),
		logger.NewField("reference", reference),
		logger.NewField("payload", PayloadPrefix+reference),
	)
	return true
}
