package service

import (
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
)

type StudentStats struct {
	EnrolledCourses      int64 `json:"enrolledCourses"`
	TotalAssignments     int64 `json:"totalAssignments"`
	SubmittedAssignments int64 `json:"submittedAssignments"`
	PendingAssignments   int64 `json:"pendingAssignments"`
}

type TeacherStats struct {
	CoursesTaught    int64 `json:"coursesTaught"`
	TotalAssignments int64 `json:"totalAssignments"`
	TotalSubmissions int64 `json:"totalSubmissions"`
}

type AdminStats struct {
	TotalStudents   int64 `json:"totalStudents"`
	TotalTeachers   int64 `json:"totalTeachers"`
	PendingTeachers int64 `json:"pendingTeachers"`
	TotalCourses    int64 `json:"totalCourses"`
}

// DashboardService computes per-role counters on every request.
type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
	}
}

// Stats dispatches on the caller's role.
func (s *DashboardService) Stats(user *model.User) (interface{}, error) {
	switch user.Role {
	case model.Student:
		return s.StudentStats(user.ID)
	case model.Teacher:
		return s.TeacherStats(user.ID)
	case model.Admin:
		return s.AdminStats()
	default:
		return nil, util.Forbidden("Unknown role")
	}
}

func (s *DashboardService) StudentStats(studentID string) (*StudentStats, error) {
	courseIDs, err := s.EnrollmentRepo.CourseIDsByStudent(studentID)
	if err != nil {
		return nil, err
	}
	assignmentIDs, err := s.AssignmentRepo.IDsByCourses(courseIDs)
	if err != nil {
		return nil, err
	}
	submitted, err := s.SubmissionRepo.SubmittedAssignmentIDs(studentID, assignmentIDs)
	if err != nil {
		return nil, err
	}

	total := int64(len(assignmentIDs))
	done := int64(len(submitted))
	return &StudentStats{
		EnrolledCourses:      int64(len(courseIDs)),
		TotalAssignments:     total,
		SubmittedAssignments: done,
		PendingAssignments:   total - done,
	}, nil
}

func (s *DashboardService) TeacherStats(teacherID string) (*TeacherStats, error) {
	courseIDs, err := s.CourseRepo.IDsByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	assignmentIDs, err := s.AssignmentRepo.IDsByCourses(courseIDs)
	if err != nil {
		return nil, err
	}
	submissions, err := s.SubmissionRepo.CountByAssignments(assignmentIDs)
	if err != nil {
		return nil, err
	}
	return &TeacherStats{
		CoursesTaught:    int64(len(courseIDs)),
		TotalAssignments: int64(len(assignmentIDs)),
		TotalSubmissions: submissions,
	}, nil
}

func (s *DashboardService) AdminStats() (*AdminStats, error) {
	var stats AdminStats
	var err error
	if stats.TotalStudents, err = s.UserRepo.CountByRole(model.Student); err != nil {
		return nil, err
	}
	if stats.TotalTeachers, err = s.UserRepo.CountByRole(model.Teacher); err != nil {
		return nil, err
	}
	if stats.PendingTeachers, err = s.UserRepo.CountPendingTeachers(); err != nil {
		return nil, err
	}
	if stats.TotalCourses, err = s.CourseRepo.Count(); err != nil {
		return nil, err
	}
	return &stats, nil
}
