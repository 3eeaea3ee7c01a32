package model

import "time"

// Enrollment links a student to a course. The pair is unique at the storage level.
// swagger:model Enrollment
type Enrollment struct {
	UUIDRecord
	StudentID  string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_student_course" json:"studentId"`
	CourseID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_student_course;index" json:"courseId"`
	EnrolledAt time.Time `gorm:"not null" json:"enrolledAt"`
	Student    *User     `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course     *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
