package model

type Favorite struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"not null;index;uniqueIndex:idx_favorites_user_book" json:"user_id"`
	BookID uint `gorm:"not null;uniqueIndex:idx_favorites_user_book" json:"book_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
