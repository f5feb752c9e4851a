package email

import "checkout/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Named(name string) logger.Logger
}
