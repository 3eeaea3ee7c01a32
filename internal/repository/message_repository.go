package repository

import (
	"learning_portal_backend/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(message *model.Message) error {
	return r.DB.Create(message).Error
}

// FindConversation returns the messages exchanged by two users in a course, oldest first.
func (r *MessageRepository) FindConversation(userA, userB, courseID string) ([]model.Message, error) {
	var messages []model.Message
	err := r.DB.Preload("Sender").Preload("Receiver").
		Where("course_id = ?", courseID).
		Where(r.DB.Where("sender_id = ? AND receiver_id = ?", userA, userB).
			Or("sender_id = ? AND receiver_id = ?", userB, userA)).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}

// FindInvolving returns every message a user sent or received in a course, newest first.
func (r *MessageRepository) FindInvolving(userID, courseID string) ([]model.Message, error) {
	var messages []model.Message
	err := r.DB.Preload("Sender").Preload("Receiver").
		Where("course_id = ?", courseID).
		Where(r.DB.Where("sender_id = ?", userID).Or("receiver_id = ?", userID)).
		Order("sent_at DESC").
		Find(&messages).Error
	return messages, err
}
