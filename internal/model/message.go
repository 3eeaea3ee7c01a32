package model

import "time"

// Message is a direct message scoped to a course. Messages are never edited.
// swagger:model Message
type Message struct {
	UUIDRecord
	SenderID   string    `gorm:"type:varchar(36);not null;index:idx_message_course_sender" json:"senderId"`
	ReceiverID string    `gorm:"type:varchar(36);not null;index:idx_message_course_receiver" json:"receiverId"`
	CourseID   string    `gorm:"type:varchar(36);not null;index:idx_message_course_sender;index:idx_message_course_receiver" json:"courseId"`
	Text       string    `gorm:"column:message;type:text;not null" json:"message"`
	SentAt     time.Time `gorm:"index;not null" json:"sentAt"`
	Sender     *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver   *User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}

// Thread is the latest message exchanged with one counterpart in a course.
// swagger:model Thread
type Thread struct {
	ThreadID      string    `json:"threadId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	LastMessage   string    `json:"lastMessage"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}
