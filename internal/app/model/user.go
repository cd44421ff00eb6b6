package model

import (
	"time"

	"github.com/ekaracan/kitapkurdu/pkg/util"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleSeller   UserRole = "seller"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);default:'customer'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// MaskedName returns the privacy-masked display form of the user's name
func (u *User) MaskedName() string {
	return util.MaskName(u.FullName)
}
