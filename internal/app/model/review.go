package model

import "time"

// Review rows are inserted only by the add_review database routine, which
// checks that the referenced order is delivered before writing.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	BookID    uint      `gorm:"not null;index" json:"book_id"`
	Star      int       `gorm:"not null" json:"star"`
	Comment   string    `gorm:"type:varchar(500)" json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Book Book `gorm:"foreignKey:BookID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

// BookReview is a read-model row for the detail page: the reviewer name
// arrives already masked from the database side.
type BookReview struct {
	Comment    string `json:"comment"`
	Star       int    `json:"star"`
	MaskedName string `json:"masked_name"`
}
