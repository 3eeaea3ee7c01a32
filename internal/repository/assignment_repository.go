package repository

import (
	"learning_portal_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) FindByID(id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.Preload("Course").Where("id = ?", id).First(&assignment).Error
	return &assignment, err
}

// FindByCourse returns assignments ordered by due date, soonest first.
func (r *AssignmentRepository) FindByCourse(courseID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("course_id = ?", courseID).Order("due_date ASC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) FindByCourses(courseIDs []string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	if len(courseIDs) == 0 {
		return assignments, nil
	}
	err := r.DB.Preload("Course").
		Where("course_id IN ?", courseIDs).
		Order("due_date ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) IDsByCourses(courseIDs []string) ([]string, error) {
	var ids []string
	if len(courseIDs) == 0 {
		return ids, nil
	}
	err := r.DB.Model(&model.Assignment{}).Where("course_id IN ?", courseIDs).Pluck("id", &ids).Error
	return ids, err
}

// FindDueBetween returns assignments with from <= due_date <= to.
func (r *AssignmentRepository) FindDueBetween(from, to time.Time) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Preload("Course").
		Where("due_date >= ? AND due_date <= ?", from, to).
		Order("due_date ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Update(assignment *model.Assignment) error {
	return r.DB.Omit("Course").Save(assignment).Error
}

func (r *AssignmentRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Assignment{}).Error
}
