package service

import (
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"math"
	"time"
)

type CompleteRequest struct {
	CourseID  string `json:"courseId"`
	ContentID string `json:"contentId"`
}

type CourseCompletion struct {
	CompletedContentIDs []string `json:"completedContentIds"`
	Progress            int      `json:"progress"`
}

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	ContentRepo  *repository.ContentRepository
	now          func() time.Time
}

func NewProgressService(progressRepo *repository.ProgressRepository, contentRepo *repository.ContentRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		ContentRepo:  contentRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// MarkComplete is idempotent. It reports created=false when the item was already completed.
func (s *ProgressService) MarkComplete(studentID string, req CompleteRequest) (bool, error) {
	if req.CourseID == "" || req.ContentID == "" {
		return false, util.Validation("courseId and contentId are required")
	}
	content, err := s.ContentRepo.FindByID(req.ContentID)
	if err != nil {
		return false, util.NotFoundOr(err, "Content not found")
	}
	if content.CourseID != req.CourseID {
		return false, util.NotFound("Content not found")
	}

	exists, err := s.ProgressRepo.Exists(studentID, req.CourseID, req.ContentID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	progress := &model.CourseProgress{
		StudentID:   studentID,
		CourseID:    req.CourseID,
		ContentID:   req.ContentID,
		CompletedAt: s.now(),
	}
	if err := s.ProgressRepo.Create(progress); err != nil {
		if util.IsDuplicate(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Completed returns the completed content ids and the rounded completion percentage.
func (s *ProgressService) Completed(studentID, courseID string) (*CourseCompletion, error) {
	ids, err := s.ProgressRepo.CompletedContentIDs(studentID, courseID)
	if err != nil {
		return nil, err
	}
	total, err := s.ContentRepo.CountByCourse(courseID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return &CourseCompletion{
		CompletedContentIDs: ids,
		Progress:            percentage(len(ids), total),
	}, nil
}

func percentage(done int, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(done) / float64(total) * 100))
	if p > 100 {
		return 100
	}
	return p
}
