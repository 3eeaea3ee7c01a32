package service

import (
	"context"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"strings"
)

type AssignmentRequest struct {
	CourseID    string `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" example:"2025-01-31T23:59:00Z"`
}

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	SubmissionRepo *repository.SubmissionRepository
	Notifier       *Notifier
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	submissionRepo *repository.SubmissionRepository,
	notifier *Notifier,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		SubmissionRepo: submissionRepo,
		Notifier:       notifier,
	}
}

// Create stores the assignment, then notifies and emails every enrolled student.
// Fan-out failures are logged by the Notifier and do not undo the assignment.
func (s *AssignmentService) Create(ctx context.Context, callerID string, req AssignmentRequest) (*model.Assignment, error) {
	title := strings.TrimSpace(req.Title)
	if req.CourseID == "" || title == "" || strings.TrimSpace(req.DueDate) == "" {
		return nil, util.Validation("courseId, title and dueDate are required")
	}
	dueDate, err := util.ParseDueDate(req.DueDate)
	if err != nil {
		return nil, util.Validation("dueDate is not a valid date")
	}
	course, err := ownedCourse(s.CourseRepo, req.CourseID, callerID)
	if err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		CourseID:    course.ID,
		Title:       title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if err := s.AssignmentRepo.Create(assignment); err != nil {
		return nil, err
	}

	s.fanOutNewAssignment(ctx, assignment, course)
	return assignment, nil
}

func (s *AssignmentService) fanOutNewAssignment(ctx context.Context, assignment *model.Assignment, course *model.Course) {
	enrollments, err := s.EnrollmentRepo.FindByCourse(course.ID)
	if err != nil {
		logFanOutError("new assignment", assignment.ID, err)
		return
	}
	notice := newAssignmentNotice(assignment, course)
	for _, e := range enrollments {
		if e.Student == nil {
			continue
		}
		s.Notifier.Notify(e.Student.ID, notice)
		subject, body := newAssignmentEmail(e.Student, assignment, course)
		s.Notifier.Email(ctx, e.Student, subject, body)
	}
}

// ByCourse lists a course's assignments, soonest due first.
func (s *AssignmentService) ByCourse(courseID string) ([]model.Assignment, error) {
	return s.AssignmentRepo.FindByCourse(courseID)
}

// ByTeacher lists assignments across every course the teacher owns.
func (s *AssignmentService) ByTeacher(teacherID string) ([]model.Assignment, error) {
	courseIDs, err := s.CourseRepo.IDsByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	return s.AssignmentRepo.FindByCourses(courseIDs)
}

// ownedAssignment loads an assignment and checks the caller teaches its course.
func ownedAssignment(repo *repository.AssignmentRepository, assignmentID, callerID string) (*model.Assignment, error) {
	assignment, err := repo.FindByID(assignmentID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Assignment not found")
	}
	if assignment.Course == nil {
		return nil, util.NotFound("Course not found")
	}
	if !util.IsOwner(callerID, assignment.Course.TeacherID) {
		return nil, util.Forbidden("Not authorized to manage this assignment")
	}
	return assignment, nil
}

func (s *AssignmentService) Update(callerID, assignmentID string, req AssignmentRequest) (*model.Assignment, error) {
	assignment, err := ownedAssignment(s.AssignmentRepo, assignmentID, callerID)
	if err != nil {
		return nil, err
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		assignment.Title = title
	}
	if req.Description != "" {
		assignment.Description = req.Description
	}
	if strings.TrimSpace(req.DueDate) != "" {
		dueDate, err := util.ParseDueDate(req.DueDate)
		if err != nil {
			return nil, util.Validation("dueDate is not a valid date")
		}
		assignment.DueDate = dueDate
	}
	if err := s.AssignmentRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Delete(callerID, assignmentID string) error {
	assignment, err := ownedAssignment(s.AssignmentRepo, assignmentID, callerID)
	if err != nil {
		return err
	}
	if err := s.AssignmentRepo.Delete(assignment.ID); err != nil {
		return err
	}
	return s.SubmissionRepo.DeleteByAssignment(assignment.ID)
}
