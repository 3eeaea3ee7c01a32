package repository

import (
	"learning_portal_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) Exists(studentID, courseID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

// FindByStudent returns the student's enrollments with their courses.
func (r *EnrollmentRepository) FindByStudent(studentID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Course").Preload("Course.Teacher").
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

// FindByCourse returns the roster of a course with the student records.
func (r *EnrollmentRepository) FindByCourse(courseID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Student").
		Where("course_id = ?", courseID).
		Order("enrolled_at ASC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) CourseIDsByStudent(studentID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Enrollment{}).Where("student_id = ?", studentID).Pluck("course_id", &ids).Error
	return ids, err
}

func (r *EnrollmentRepository) Delete(studentID, courseID string) (int64, error) {
	result := r.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).Delete(&model.Enrollment{})
	return result.RowsAffected, result.Error
}

func (r *EnrollmentRepository) CountByCourse(courseID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

// CountByStudents returns enrollment counts keyed by student id.
func (r *EnrollmentRepository) CountByStudents(studentIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(studentIDs))
	if len(studentIDs) == 0 {
		return counts, nil
	}
	var rows []ownerCount
	err := r.DB.Model(&model.Enrollment{}).
		Select("student_id AS owner_id, COUNT(*) AS total").
		Where("student_id IN ?", studentIDs).
		Group("student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}
