package model

import "time"

// AdminNotification is produced by administrative processes and is
// read-only to the storefront.
type AdminNotification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Message   string    `gorm:"type:varchar(255);not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
}

func (AdminNotification) TableName() string {
	return "admin_notifications"
}
