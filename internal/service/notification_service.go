package service

import (
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"time"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
	now              func() time.Time
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{
		NotificationRepo: notificationRepo,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *NotificationService) List(userID string) ([]model.Notification, error) {
	return s.NotificationRepo.FindByUser(userID)
}

// MarkRead marks one of the caller's notifications as read. Notifications of
// other users are reported as not found.
func (s *NotificationService) MarkRead(userID, id string) (*model.Notification, error) {
	notification, err := s.NotificationRepo.FindForUser(id, userID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Notification not found")
	}
	if notification.Read {
		return notification, nil
	}
	if err := s.NotificationRepo.MarkRead(notification, s.now()); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(userID string) (int64, error) {
	return s.NotificationRepo.MarkAllRead(userID, s.now())
}

func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	return s.NotificationRepo.CountUnread(userID)
}
