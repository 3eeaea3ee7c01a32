package model

import "time"

// swagger:model Assignment
type Assignment struct {
	UUIDBase
	CourseID    string    `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"index;not null" json:"dueDate"`
	Course      *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentWithStatus is an assignment as seen by one student.
// swagger:model AssignmentWithStatus
type AssignmentWithStatus struct {
	Assignment
	Submitted bool             `json:"submitted"`
	Status    SubmissionStatus `json:"status"`
}
