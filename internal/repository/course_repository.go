package repository

import (
	"learning_portal_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ?", id).First(&course).Error
	return &course, err
}

// FindAll lists every course with its teacher, newest first.
func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Teacher").Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByTeacher(teacherID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) IDsByTeacher(teacherID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Course{}).Where("teacher_id = ?", teacherID).Pluck("id", &ids).Error
	return ids, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Course{}).Error
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

type ownerCount struct {
	OwnerID string
	Total   int64
}

// CountByTeachers returns course counts keyed by teacher id.
func (r *CourseRepository) CountByTeachers(teacherIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(teacherIDs))
	if len(teacherIDs) == 0 {
		return counts, nil
	}
	var rows []ownerCount
	err := r.DB.Model(&model.Course{}).
		Select("teacher_id AS owner_id, COUNT(*) AS total").
		Where("teacher_id IN ?", teacherIDs).
		Group("teacher_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}
