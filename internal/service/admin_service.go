package service

import (
	"context"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"time"
)

// StudentOverview is a student as listed to admins.
type StudentOverview struct {
	model.UserSummary
	CreatedAt     time.Time `json:"createdAt"`
	EnrolledCount int64     `json:"enrolledCount"`
}

// TeacherOverview is a teacher as listed to admins.
type TeacherOverview struct {
	model.UserSummary
	IsApproved  bool      `json:"isApproved"`
	CreatedAt   time.Time `json:"createdAt"`
	CourseCount int64     `json:"courseCount"`
}

type AdminService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Notifier       *Notifier
}

func NewAdminService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	notifier *Notifier,
) *AdminService {
	return &AdminService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Notifier:       notifier,
	}
}

func (s *AdminService) PendingTeachers() ([]model.User, error) {
	return s.UserRepo.FindPendingTeachers()
}

func (s *AdminService) findTeacher(id string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.NotFoundOr(err, "Teacher not found")
	}
	if user.Role != model.Teacher {
		return nil, util.NotFound("Teacher not found")
	}
	return user, nil
}

func (s *AdminService) ApproveTeacher(ctx context.Context, id string) (*model.User, error) {
	teacher, err := s.findTeacher(id)
	if err != nil {
		return nil, err
	}
	teacher.IsApproved = true
	if err := s.UserRepo.Update(teacher); err != nil {
		return nil, err
	}

	subject, body := approvedEmail(teacher)
	s.Notifier.Email(ctx, teacher, subject, body)
	return teacher, nil
}

// DeclineTeacher removes a teacher registration that was never approved.
func (s *AdminService) DeclineTeacher(ctx context.Context, id string) error {
	teacher, err := s.findTeacher(id)
	if err != nil {
		return err
	}
	if teacher.IsApproved {
		return util.Validation("Cannot decline an already approved teacher")
	}
	if err := s.UserRepo.Delete(teacher.ID); err != nil {
		return err
	}

	subject, body := declinedEmail(teacher)
	s.Notifier.Email(ctx, teacher, subject, body)
	return nil
}

func (s *AdminService) PromoteTeacher(ctx context.Context, id string) (*model.User, error) {
	teacher, err := s.findTeacher(id)
	if err != nil {
		return nil, err
	}
	teacher.Role = model.Admin
	teacher.IsApproved = true
	if err := s.UserRepo.Update(teacher); err != nil {
		return nil, err
	}

	subject, body := promotedEmail(teacher)
	s.Notifier.Email(ctx, teacher, subject, body)
	return teacher, nil
}

func (s *AdminService) Students() ([]StudentOverview, error) {
	students, err := s.UserRepo.FindByRole(model.Student)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.ID)
	}
	counts, err := s.EnrollmentRepo.CountByStudents(ids)
	if err != nil {
		return nil, err
	}

	result := make([]StudentOverview, 0, len(students))
	for i := range students {
		st := &students[i]
		result = append(result, StudentOverview{
			UserSummary:   st.Summary(),
			CreatedAt:     st.CreatedAt,
			EnrolledCount: counts[st.ID],
		})
	}
	return result, nil
}

func (s *AdminService) Teachers() ([]TeacherOverview, error) {
	teachers, err := s.UserRepo.FindByRole(model.Teacher)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.ID)
	}
	counts, err := s.CourseRepo.CountByTeachers(ids)
	if err != nil {
		return nil, err
	}

	result := make([]TeacherOverview, 0, len(teachers))
	for i := range teachers {
		t := &teachers[i]
		result = append(result, TeacherOverview{
			UserSummary: t.Summary(),
			IsApproved:  t.IsApproved,
			CreatedAt:   t.CreatedAt,
			CourseCount: counts[t.ID],
		})
	}
	return result, nil
}
