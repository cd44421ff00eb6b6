package service

import (
	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
)

// Broadcaster pushes a message to every live notification page
type Broadcaster interface {
	Broadcast(message string)
}

type NotificationService interface {
	List() ([]model.AdminNotification, error)
	Announce(message string) (*model.AdminNotification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	broadcaster      Broadcaster
}

func NewNotificationService(notificationRepo repository.NotificationRepository, broadcaster Broadcaster) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
	}
}

func (s *notificationService) List() ([]model.AdminNotification, error) {
	return s.notificationRepo.FindAll()
}

// Announce persists the notification and pushes it to connected clients
func (s *notificationService) Announce(message string) (*model.AdminNotification, error) {
	notification := &model.AdminNotification{Message: message}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(message)
	}

	logger.Info("Announcement published", map[string]interface{}{
		"notification_id": notification.ID,
	})
	return notification, nil
}
