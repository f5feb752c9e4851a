package logger

// Имена каналов логирования, используемые в checkout.
const (
	ChannelCheckout      = "Checkout"
	ChannelNotification  = "Notification"
	ChannelPaymentMethod = "PaymentMethod"
)

type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger абстракция над конкретной реализацией логгера (см. zap_adapter).
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With возвращает дочерний логгер с добавленными полями.
	With(fields ...Field) Logger

	// Named возвращает дочерний логгер, пишущий в именованный канал.
	Named(name string) Logger
}
