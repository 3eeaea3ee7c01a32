package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// swagger:model
type UUIDBase struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = GenerateUUID()
	}
	return
}

// UUIDRecord is the base for link rows (enrollments, progress markers) that are
// removed for real, so their unique indexes never collide with soft-deleted rows.
// swagger:model
type UUIDRecord struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *UUIDRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = GenerateUUID()
	}
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}

// AllModels lists every table the portal migrates.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Course{},
		&Enrollment{},
		&CourseContent{},
		&CourseProgress{},
		&Assignment{},
		&Submission{},
		&Message{},
		&Notification{},
		&ReminderLog{},
	}
}
