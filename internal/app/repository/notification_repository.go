package repository

import (
	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.AdminNotification) error
	FindAll() ([]model.AdminNotification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *model.AdminNotification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) FindAll() ([]model.AdminNotification, error) {
	var notifications []model.AdminNotification
	if err := r.db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
