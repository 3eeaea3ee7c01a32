package model

import "time"

// swagger:model Notification
type Notification struct {
	UUIDRecord
	UserID  string     `gorm:"type:varchar(36);index;not null" json:"userId"`
	Message string     `gorm:"type:text;not null" json:"message"`
	Read    bool       `gorm:"column:is_read;default:false" json:"read"`
	ReadAt  *time.Time `json:"readAt,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
