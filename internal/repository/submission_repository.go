package repository

import (
	"learning_portal_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.DB.Create(submission).Error
}

// FindByID loads the submission with its assignment, course and student.
func (r *SubmissionRepository) FindByID(id string) (*model.Submission, error) {
	var submission model.Submission
	err := r.DB.Preload("Assignment").Preload("Assignment.Course").Preload("Student").
		Where("id = ?", id).
		First(&submission).Error
	return &submission, err
}

func (r *SubmissionRepository) Find(assignmentID, studentID string) (*model.Submission, error) {
	var submission model.Submission
	err := r.DB.Preload("Assignment").
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&submission).Error
	return &submission, err
}

func (r *SubmissionRepository) Exists(assignmentID, studentID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Count(&count).Error
	return count > 0, err
}

// FindByAssignment returns all submissions for one assignment, newest first.
func (r *SubmissionRepository) FindByAssignment(assignmentID string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Preload("Student").
		Where("assignment_id = ?", assignmentID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) FindByStudent(studentID string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Preload("Assignment").Preload("Assignment.Course").
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) FindByAssignments(assignmentIDs []string) ([]model.Submission, error) {
	var submissions []model.Submission
	if len(assignmentIDs) == 0 {
		return submissions, nil
	}
	err := r.DB.Preload("Student").Preload("Assignment").Preload("Assignment.Course").
		Where("assignment_id IN ?", assignmentIDs).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// SubmittedAssignmentIDs returns which of assignmentIDs the student has submitted.
func (r *SubmissionRepository) SubmittedAssignmentIDs(studentID string, assignmentIDs []string) ([]string, error) {
	var ids []string
	if len(assignmentIDs) == 0 {
		return ids, nil
	}
	err := r.DB.Model(&model.Submission{}).
		Where("student_id = ? AND assignment_id IN ?", studentID, assignmentIDs).
		Pluck("assignment_id", &ids).Error
	return ids, err
}

// FindByStudentAndAssignments returns the student's submissions among assignmentIDs.
func (r *SubmissionRepository) FindByStudentAndAssignments(studentID string, assignmentIDs []string) ([]model.Submission, error) {
	var submissions []model.Submission
	if len(assignmentIDs) == 0 {
		return submissions, nil
	}
	err := r.DB.Where("student_id = ? AND assignment_id IN ?", studentID, assignmentIDs).
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) UpdateGrade(submission *model.Submission) error {
	return r.DB.Model(&model.Submission{}).
		Where("id = ?", submission.ID).
		Updates(map[string]interface{}{
			"grade":    submission.Grade,
			"feedback": submission.Feedback,
		}).Error
}

func (r *SubmissionRepository) CountByAssignments(assignmentIDs []string) (int64, error) {
	var count int64
	if len(assignmentIDs) == 0 {
		return 0, nil
	}
	err := r.DB.Model(&model.Submission{}).Where("assignment_id IN ?", assignmentIDs).Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) DeleteByAssignment(assignmentID string) error {
	return r.DB.Where("assignment_id = ?", assignmentID).Delete(&model.Submission{}).Error
}
