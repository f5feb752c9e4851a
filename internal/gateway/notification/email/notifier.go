package email

import (
	"context"
	"fmt"

	"checkout/internal/entities"
	"checkout/pkg/logger"
)

type Notifier struct {
	log handlerLogger
}

func New(log handlerLogger) *Notifier {
	return &Notifier{
		log: log.Named(logger.ChannelNotification),
	}
}

func Message(order *entities.Order) string {
	return fmt.Sprintf("sending confirmation email to %s", order.CustomerName)
}

// Send только пишет сообщение в канал Notification, реальной отправки нет.
func (n *Notifier) Send(_ context.Context, order *entities.Order) {
	n.log.Info(Message(order),
		logger.NewField("customer", order.CustomerName),
		logger.NewField("status", order.Status.String()),
	)
}
