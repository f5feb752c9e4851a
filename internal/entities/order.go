package entities

import "github.com/shopspring/decimal"

type Order struct {
	CustomerName string
	TotalPrice   decimal.Decimal
	Status       OrderStatusType
}

// NewOrder создает заказ в статусе open. Статус меняет только checkout.
func NewOrder(customerName string, totalPrice decimal.Decimal) *Order {
	return &Order{
		CustomerName: customerName,
		TotalPrice:   totalPrice,
		Status:       OrderOpen,
	}
}

type OrderStatusType string

const (
	OrderOpen OrderStatusType = "open"
	OrderPaid OrderStatusType = "paid"
)

func (s OrderStatusType) String() string {
	return string(s)
}
