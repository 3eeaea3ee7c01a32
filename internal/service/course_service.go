package service

import (
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"strings"
	"time"
)

type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EnrolledStudent is one row of a course roster.
type EnrolledStudent struct {
	model.UserSummary
	EnrolledAt time.Time `json:"enrolledAt"`
}

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

// ownedCourse loads a course and checks that callerID is its teacher.
func ownedCourse(repo *repository.CourseRepository, courseID, callerID string) (*model.Course, error) {
	course, err := repo.FindByID(courseID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Course not found")
	}
	if !util.IsOwner(callerID, course.TeacherID) {
		return nil, util.Forbidden("Not authorized to manage this course")
	}
	return course, nil
}

func (s *CourseService) Create(teacherID string, req CourseRequest) (*model.Course, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, util.Validation("Title is required")
	}
	course := &model.Course{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		TeacherID:   teacherID,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) MyCourses(teacherID string) ([]model.Course, error) {
	return s.CourseRepo.FindByTeacher(teacherID)
}

func (s *CourseService) All() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

// Update applies only the non-empty fields of req.
func (s *CourseService) Update(callerID, courseID string, req CourseRequest) (*model.Course, error) {
	course, err := ownedCourse(s.CourseRepo, courseID, callerID)
	if err != nil {
		return nil, err
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		course.Title = title
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		course.Description = desc
	}
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete refuses while any student is enrolled.
func (s *CourseService) Delete(callerID, courseID string) error {
	course, err := ownedCourse(s.CourseRepo, courseID, callerID)
	if err != nil {
		return err
	}
	enrolled, err := s.EnrollmentRepo.CountByCourse(course.ID)
	if err != nil {
		return err
	}
	if enrolled > 0 {
		return util.Validation("Cannot delete course. Students are enrolled.")
	}
	return s.CourseRepo.Delete(course.ID)
}

// Roster lists the students enrolled in a course the caller teaches.
func (s *CourseService) Roster(callerID, courseID string) ([]EnrolledStudent, error) {
	course, err := ownedCourse(s.CourseRepo, courseID, callerID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.FindByCourse(course.ID)
	if err != nil {
		return nil, err
	}
	students := make([]EnrolledStudent, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Student == nil {
			continue
		}
		students = append(students, EnrolledStudent{
			UserSummary: e.Student.Summary(),
			EnrolledAt:  e.EnrolledAt,
		})
	}
	return students, nil
}
