package model

import "time"

// Cart is the persisted cart container written at checkout time. One per
// user; the session cart is the source of truth until then.
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	ID       uint `gorm:"primarykey" json:"id"`
	CartID   uint `gorm:"not null;index;uniqueIndex:idx_cart_items_cart_book" json:"cart_id"`
	BookID   uint `gorm:"not null;uniqueIndex:idx_cart_items_cart_book" json:"book_id"`
	Quantity int  `gorm:"not null" json:"quantity"`

	Cart Cart `gorm:"foreignKey:CartID" json:"-"`
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
