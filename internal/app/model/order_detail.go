package model

import "time"

// OrderDetail is one row of the order_details database view: one order line
// item joined with its order header, book and customer.
type OrderDetail struct {
	OrderID           uint        `json:"order_id"`
	OrderDate         time.Time   `json:"order_date"`
	CustomerID        uint        `json:"customer_id"`
	CustomerName      string      `json:"customer_name"`
	Status            OrderStatus `json:"status"`
	BookID            uint        `json:"book_id"`
	BookName          string      `json:"book_name"`
	Quantity          int         `json:"quantity"`
	UnitPrice         float64     `json:"unit_price"`
	TotalAmount       float64     `json:"total_amount"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
}

// OrderSummary groups detail rows of one order for display
type OrderSummary struct {
	OrderID           uint
	OrderDate         time.Time
	CustomerName      string
	Status            OrderStatus
	GrandTotal        float64
	EstimatedDelivery time.Time
	Items             []OrderDetail
}
