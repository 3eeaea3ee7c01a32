package model

import "time"

// SubmissionStatus is derived, never stored.
type SubmissionStatus string

const (
	NotSubmitted SubmissionStatus = "not_submitted"
	Submitted    SubmissionStatus = "submitted"
	Graded       SubmissionStatus = "graded"
)

// swagger:model Submission
type Submission struct {
	UUIDBase
	AssignmentID string      `gorm:"type:varchar(36);not null;uniqueIndex:idx_submission_assignment_student" json:"assignmentId"`
	StudentID    string      `gorm:"type:varchar(36);not null;uniqueIndex:idx_submission_assignment_student;index" json:"studentId"`
	Content      string      `gorm:"type:text" json:"content"`
	File         string      `gorm:"size:255" json:"file"`
	SubmittedAt  time.Time   `gorm:"not null" json:"submittedAt"`
	Grade        *float64    `json:"grade"`
	Feedback     string      `gorm:"type:text" json:"feedback"`
	Assignment   *Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Student      *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) Status() SubmissionStatus {
	if s == nil {
		return NotSubmitted
	}
	if s.Grade != nil {
		return Graded
	}
	return Submitted
}
