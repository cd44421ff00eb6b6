package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known status codes
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	CustomerID      uint        `gorm:"not null;index" json:"customer_id"`
	Status          OrderStatus `gorm:"type:varchar(30);default:'pending'" json:"status"`
	OrderDate       time.Time   `gorm:"not null" json:"order_date"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	ShippingAddress string      `gorm:"type:varchar(255)" json:"shipping_address"`

	Customer User        `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	BookID    uint    `gorm:"not null;index" json:"book_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
	Book  Book  `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderStatusHistory is the audit trail written by update_order_status
type OrderStatusHistory struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	OldStatus  string    `gorm:"type:varchar(50)" json:"old_status"`
	NewStatus  string    `gorm:"type:varchar(50)" json:"new_status"`
	ChangeDate time.Time `json:"change_date"`
}

func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
