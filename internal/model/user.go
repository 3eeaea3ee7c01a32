package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == Student || r == Teacher || r == Admin
}

// swagger:model User
type User struct {
	UUIDBase
	Name       string   `gorm:"size:100;not null" json:"name"`
	Email      string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password   string   `gorm:"size:100;not null" json:"-"`
	Role       UserRole `gorm:"size:20;default:'student';index" json:"role"`
	IsApproved bool     `gorm:"default:false" json:"isApproved"`
	// only the sha256 of the reset token is stored
	ResetPasswordToken   *string    `gorm:"size:64;index" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	ProfileImage         string     `gorm:"size:255" json:"profileImage"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary is the public projection embedded in other payloads.
// swagger:model UserSummary
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
