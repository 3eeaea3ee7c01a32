package model

import "time"

// CourseProgress marks one content item of a course as completed by a student.
// swagger:model CourseProgress
type CourseProgress struct {
	UUIDRecord
	StudentID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_student_course_content" json:"studentId"`
	CourseID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_student_course_content" json:"courseId"`
	ContentID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_student_course_content" json:"contentId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}
