package repository

import (
	"learning_portal_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) Create(content *model.CourseContent) error {
	return r.DB.Create(content).Error
}

func (r *ContentRepository) FindByID(id string) (*model.CourseContent, error) {
	var content model.CourseContent
	err := r.DB.Where("id = ?", id).First(&content).Error
	return &content, err
}

// FindByCourse returns course contents in display order.
func (r *ContentRepository) FindByCourse(courseID string) ([]model.CourseContent, error) {
	var contents []model.CourseContent
	err := r.DB.Where("course_id = ?", courseID).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&contents).Error
	return contents, err
}

func (r *ContentRepository) CountByCourse(courseID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CourseContent{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *ContentRepository) Update(content *model.CourseContent) error {
	return r.DB.Save(content).Error
}

func (r *ContentRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.CourseContent{}).Error
}
