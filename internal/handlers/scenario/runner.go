package scenario

import (
	"context"
	"fmt"
	"io"

	"checkout/internal/entities"
	"checkout/pkg/logger"
)

type Scenario struct {
	Title    string
	Order    *entities.Order
	Checkout Checkout
}

type Result struct {
	Title    string
	Customer string
	OK       bool
	Status   entities.OrderStatusType
}

type Runner struct {
	log handlerLogger
	out io.Writer
}

func New(log handlerLogger, out io.Writer) *Runner {
	return &Runner{
		log: log.With(),
		out: out,
	}
}

// Run печатает заголовок каждого сценария в out и запускает checkout.
// Результат checkout в out не пишется, только в debug лог.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))

	for i, s := range scenarios {
		header := fmt.Sprintf("--- %s ---\n", s.Title)
		if i > 0 {
			header = "\n" + header
		}
		if _, err := io.WriteString(r.out, header); err != nil {
			return results, fmt.Errorf("write scenario header %q: %w", s.Title, err)
		}

		ok := s.Checkout.RunCheckout(ctx, s.Order)

		result := Result{
			Title:    s.Title,
			Customer: s.Order.CustomerName,
			OK:       ok,
			Status:   s.Order.Status,
		}
		results = append(results, result)

		r.log.With(
			logger.NewField("scenario", result.Title),
			logger.NewField("customer", result.Customer),
			logger.NewField("ok", result.OK),
			logger.NewField("status", result.Status.String()),
		).Debug("scenario finished")
	}

	return results, nil
}
