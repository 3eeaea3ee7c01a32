package service

import (
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"strings"

	"gorm.io/datatypes"
)

type ContentRequest struct {
	CourseID    string            `json:"courseId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ContentType model.ContentType `json:"contentType"`
	ContentData datatypes.JSON    `json:"contentData" swaggertype:"object"`
	Order       *int              `json:"order"`
}

type ContentService struct {
	ContentRepo  *repository.ContentRepository
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
}

func NewContentService(
	contentRepo *repository.ContentRepository,
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
) *ContentService {
	return &ContentService{
		ContentRepo:  contentRepo,
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
	}
}

func (s *ContentService) Create(callerID string, req ContentRequest) (*model.CourseContent, error) {
	title := strings.TrimSpace(req.Title)
	if req.CourseID == "" || title == "" || req.ContentType == "" {
		return nil, util.Validation("courseId, title and contentType are required")
	}
	if !req.ContentType.Valid() {
		return nil, util.Validation("contentType must be one of video, article, quiz")
	}
	course, err := ownedCourse(s.CourseRepo, req.CourseID, callerID)
	if err != nil {
		return nil, err
	}

	content := &model.CourseContent{
		CourseID:    course.ID,
		Title:       title,
		Description: req.Description,
		ContentType: req.ContentType,
		ContentData: req.ContentData,
	}
	if req.Order != nil {
		content.Order = *req.Order
	}
	if err := s.ContentRepo.Create(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) ByCourse(courseID string) ([]model.CourseContent, error) {
	return s.ContentRepo.FindByCourse(courseID)
}

// ownedContent loads a content item and checks the caller teaches its course.
func (s *ContentService) ownedContent(callerID, contentID string) (*model.CourseContent, error) {
	content, err := s.ContentRepo.FindByID(contentID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Content not found")
	}
	if _, err := ownedCourse(s.CourseRepo, content.CourseID, callerID); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) Update(callerID, contentID string, req ContentRequest) (*model.CourseContent, error) {
	content, err := s.ownedContent(callerID, contentID)
	if err != nil {
		return nil, err
	}
	if req.ContentType != "" {
		if !req.ContentType.Valid() {
			return nil, util.Validation("contentType must be one of video, article, quiz")
		}
		content.ContentType = req.ContentType
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		content.Title = title
	}
	if req.Description != "" {
		content.Description = req.Description
	}
	if len(req.ContentData) > 0 {
		content.ContentData = req.ContentData
	}
	if req.Order != nil {
		content.Order = *req.Order
	}
	if err := s.ContentRepo.Update(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) Delete(callerID, contentID string) error {
	content, err := s.ownedContent(callerID, contentID)
	if err != nil {
		return err
	}
	if err := s.ContentRepo.Delete(content.ID); err != nil {
		return err
	}
	return s.ProgressRepo.DeleteByContent(content.ID)
}
