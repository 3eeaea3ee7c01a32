package model

import "gorm.io/datatypes"

type ContentType string

const (
	ContentVideo   ContentType = "video"
	ContentArticle ContentType = "article"
	ContentQuiz    ContentType = "quiz"
)

func (t ContentType) Valid() bool {
	return t == ContentVideo || t == ContentArticle || t == ContentQuiz
}

// CourseContent is one ordered unit of a course. ContentData holds a URL for
// videos, text for articles and the quiz document for quizzes.
// swagger:model CourseContent
type CourseContent struct {
	UUIDBase
	CourseID    string         `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ContentType ContentType    `gorm:"size:20;not null" json:"contentType"`
	ContentData datatypes.JSON `json:"contentData" swaggertype:"object"`
	Order       int            `gorm:"column:sort_order;default:0" json:"order"`
}

func (CourseContent) TableName() string {
	return "course_contents"
}
