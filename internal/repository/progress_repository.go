package repository

import (
	"learning_portal_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.CourseProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) Exists(studentID, courseID, contentID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CourseProgress{}).
		Where("student_id = ? AND course_id = ? AND content_id = ?", studentID, courseID, contentID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProgressRepository) CompletedContentIDs(studentID, courseID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.CourseProgress{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Order("completed_at ASC").
		Pluck("content_id", &ids).Error
	return ids, err
}

// DeleteByContent drops completion markers for a removed content item.
func (r *ProgressRepository) DeleteByContent(contentID string) error {
	return r.DB.Where("content_id = ?", contentID).Delete(&model.CourseProgress{}).Error
}
