package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// OrderStatus is the fulfilment state reported by the API.
type OrderStatus string

// Known order statuses.
const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Label returns a human-readable label for the status.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderPaid:
		return "Paid"
	case OrderShipped:
		return "Shipped"
	case OrderDelivered:
		return "Delivered"
	case OrderCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// OrderItem is a product line captured at purchase time.
type OrderItem struct {
	ProductID       ProductID `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductImage    string    `json:"productImage,omitempty"`
	Quantity        int       `json:"quantity"`
	PriceAtPurchase float64   `json:"priceAtPurchase"`
}

// Subtotal returns quantity times purchase price.
func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.PriceAtPurchase
}

// Order is a placed order.
type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"userId,omitempty"`
	Username        string      `json:"username,omitempty"`
	OrderDate       time.Time   `json:"orderDate"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	Items           []OrderItem `json:"items"`
}

// orderDateLayouts are the timestamp forms the API has been seen to emit.
// Zone-less values are read as UTC.
var orderDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON accepts order dates with or without a zone offset.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	aux := struct {
		*plain
		OrderDate string `json:"orderDate"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.OrderDate == "" {
		o.OrderDate = time.Time{}
		return nil
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, aux.OrderDate); err == nil {
			o.OrderDate = t
			return nil
		}
	}
	return fmt.Errorf("order %d: unrecognised orderDate %q", o.ID, aux.OrderDate)
}

// SortOrdersNewestFirst orders by OrderDate descending, in place.
func SortOrdersNewestFirst(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
}
