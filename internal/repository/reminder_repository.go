package repository

import (
	"learning_portal_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReminderLogRepository struct {
	DB *gorm.DB
}

func NewReminderLogRepository(db *gorm.DB) *ReminderLogRepository {
	return &ReminderLogRepository{DB: db}
}

// Claim records a reminder for (assignment, student). It reports false when the
// pair was already reminded, so at most one caller ever wins a given pair.
func (r *ReminderLogRepository) Claim(assignmentID, studentID string, at time.Time) (bool, error) {
	entry := &model.ReminderLog{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		RemindedAt:   at,
	}
	result := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Release forgets a claim whose delivery failed entirely, so the next sweep retries it.
func (r *ReminderLogRepository) Release(assignmentID, studentID string) error {
	return r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Delete(&model.ReminderLog{}).Error
}
