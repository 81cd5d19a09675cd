package models

import "fmt"

const DefaultDeliveryAddress = "123 Main Street, Lagos"

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, v := range orderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether an order with this status belongs to history.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID                string      `json:"id"`
	Restaurant        string      `json:"restaurant"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
	DeliveryTime      string      `json:"delivery_time"`
	Status            OrderStatus `json:"status"`
	EstimatedDelivery *string     `json:"estimated_delivery,omitempty"`
	DeliveryAddress   *string     `json:"delivery_address,omitempty"`
}

// OrderInput is the payload for creating an order. ID is optional.
type OrderInput struct {
	ID                string      `json:"id,omitempty"`
	Restaurant        string      `json:"restaurant"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
	DeliveryTime      string      `json:"delivery_time"`
	Status            OrderStatus `json:"status"`
	EstimatedDelivery *string     `json:"estimated_delivery,omitempty"`
	DeliveryAddress   *string     `json:"delivery_address,omitempty"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = append([]OrderItem(nil), o.Items...)
	}
	out.EstimatedDelivery = cloneString(o.EstimatedDelivery)
	out.DeliveryAddress = cloneString(o.DeliveryAddress)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
