package service

import (
	"context"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"time"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	Notifier       *Notifier
	now            func() time.Time
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	notifier *Notifier,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		Notifier:       notifier,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *EnrollmentService) Enroll(ctx context.Context, student *model.User, courseID string) (*model.Enrollment, error) {
	if courseID == "" {
		return nil, util.Validation("courseId is required")
	}
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Course not found")
	}

	exists, err := s.EnrollmentRepo.Exists(student.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.Conflict("Already enrolled in this course")
	}

	enrollment := &model.Enrollment{
		StudentID:  student.ID,
		CourseID:   course.ID,
		EnrolledAt: s.now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if util.IsDuplicate(err) {
			return nil, util.Conflict("Already enrolled in this course")
		}
		return nil, err
	}

	s.Notifier.Notify(course.TeacherID, enrolledTeacherNotice(student, course))
	s.Notifier.Notify(student.ID, enrolledStudentNotice(course))
	subject, body := enrolledEmail(student, course)
	s.Notifier.Email(ctx, student, subject, body)

	return enrollment, nil
}

func (s *EnrollmentService) MyCourses(studentID string) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByStudent(studentID)
}

func (s *EnrollmentService) Unenroll(studentID, courseID string) error {
	removed, err := s.EnrollmentRepo.Delete(studentID, courseID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return util.NotFound("You are not enrolled in this course")
	}
	return nil
}
