package repository

import (
	"learning_portal_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(notification *model.Notification) error {
	return r.DB.Create(notification).Error
}

func (r *NotificationRepository) FindByUser(userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) FindForUser(id, userID string) (*model.Notification, error) {
	var notification model.Notification
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error
	return &notification, err
}

func (r *NotificationRepository) MarkRead(notification *model.Notification, at time.Time) error {
	notification.Read = true
	notification.ReadAt = &at
	return r.DB.Model(notification).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": at,
	}).Error
}

func (r *NotificationRepository) MarkAllRead(userID string, at time.Time) (int64, error) {
	result := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": at,
		})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
