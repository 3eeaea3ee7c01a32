package model

import "time"

// ReminderLog records that a student was reminded about an assignment, so
// consecutive sweeps over the same due window do not repeat themselves.
type ReminderLog struct {
	UUIDRecord
	AssignmentID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_reminder_assignment_student" json:"assignmentId"`
	StudentID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_reminder_assignment_student" json:"studentId"`
	RemindedAt   time.Time `gorm:"not null" json:"remindedAt"`
}

func (ReminderLog) TableName() string {
	return "reminder_logs"
}
