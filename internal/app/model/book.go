package model

import "time"

type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

type Book struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"not null;index" json:"name"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	Author        string    `gorm:"not null;index" json:"author"`
	Price         float64   `gorm:"not null" json:"price"`
	Stock         int       `gorm:"not null;default:0" json:"stock"`
	AverageRating float64   `gorm:"default:0" json:"average_rating"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Book) TableName() string {
	return "books"
}
