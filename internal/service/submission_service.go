package service

import (
	"context"
	"fmt"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"time"
)

type SubmitRequest struct {
	Content string
	File    string
}

type GradeRequest struct {
	Grade    *float64 `json:"grade"`
	Feedback string   `json:"feedback"`
}

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	AssignmentRepo *repository.AssignmentRepository
	CourseRepo     *repository.CourseRepository
	Notifier       *Notifier
	Policy         *Policy
	now            func() time.Time
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assignmentRepo *repository.AssignmentRepository,
	courseRepo *repository.CourseRepository,
	notifier *Notifier,
	policy *Policy,
) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		AssignmentRepo: assignmentRepo,
		CourseRepo:     courseRepo,
		Notifier:       notifier,
		Policy:         policy,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Submit records the student's single submission for an assignment.
func (s *SubmissionService) Submit(ctx context.Context, student *model.User, assignmentID string, req SubmitRequest) (*model.Submission, error) {
	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Assignment not found")
	}

	exists, err := s.SubmissionRepo.Exists(assignment.ID, student.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.Conflict("You have already submitted this assignment")
	}

	submission := &model.Submission{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      req.Content,
		File:         req.File,
		SubmittedAt:  s.now(),
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		if util.IsDuplicate(err) {
			return nil, util.Conflict("You have already submitted this assignment")
		}
		return nil, err
	}

	s.Notifier.Notify(student.ID, submittedNotice(assignment))
	subject, body := submittedEmail(student, assignment)
	s.Notifier.Email(ctx, student, subject, body)

	return submission, nil
}

func (s *SubmissionService) checkGrade(grade *float64) error {
	if grade == nil {
		return util.Validation("Grade is required")
	}
	policy := s.Policy.Get()
	if policy.EnforceGradeRange && (*grade < policy.MinGrade || *grade > policy.MaxGrade) {
		return util.Validation(fmt.Sprintf("Grade must be between %v and %v", policy.MinGrade, policy.MaxGrade))
	}
	return nil
}

// Grade sets grade and feedback. Grading again overwrites the previous values.
func (s *SubmissionService) Grade(ctx context.Context, callerID, submissionID string, req GradeRequest) (*model.Submission, error) {
	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Submission not found")
	}
	if submission.Assignment == nil || submission.Assignment.Course == nil {
		return nil, util.NotFound("Assignment not found")
	}
	if !util.IsOwner(callerID, submission.Assignment.Course.TeacherID) {
		return nil, util.Forbidden("Not authorized to grade this submission")
	}
	if err := s.checkGrade(req.Grade); err != nil {
		return nil, err
	}

	submission.Grade = req.Grade
	submission.Feedback = req.Feedback
	if err := s.SubmissionRepo.UpdateGrade(submission); err != nil {
		return nil, err
	}

	s.Notifier.Notify(submission.StudentID, gradedNotice(submission.Assignment, submission.Grade))
	subject, body := gradedEmail(submission.Student, submission.Assignment, submission.Grade, submission.Feedback)
	s.Notifier.Email(ctx, submission.Student, subject, body)

	return submission, nil
}

// ByAssignment lists all submissions of an assignment the caller teaches.
func (s *SubmissionService) ByAssignment(callerID, assignmentID string) ([]model.Submission, error) {
	assignment, err := ownedAssignment(s.AssignmentRepo, assignmentID, callerID)
	if err != nil {
		return nil, err
	}
	return s.SubmissionRepo.FindByAssignment(assignment.ID)
}

func (s *SubmissionService) MySubmissions(studentID string) ([]model.Submission, error) {
	return s.SubmissionRepo.FindByStudent(studentID)
}

// MySubmission returns the caller's submission for one assignment, grade and feedback included.
func (s *SubmissionService) MySubmission(studentID, assignmentID string) (*model.Submission, error) {
	submission, err := s.SubmissionRepo.Find(assignmentID, studentID)
	if err != nil {
		return nil, util.NotFoundOr(err, "No submission found for this assignment")
	}
	return submission, nil
}

// CourseAssignments lists a course's assignments with the student's submission
// state for each: not submitted, submitted or graded.
func (s *SubmissionService) CourseAssignments(studentID, courseID string) ([]model.AssignmentWithStatus, error) {
	assignments, err := s.AssignmentRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ID)
	}
	submissions, err := s.SubmissionRepo.FindByStudentAndAssignments(studentID, ids)
	if err != nil {
		return nil, err
	}
	byAssignment := make(map[string]*model.Submission, len(submissions))
	for i := range submissions {
		byAssignment[submissions[i].AssignmentID] = &submissions[i]
	}

	result := make([]model.AssignmentWithStatus, 0, len(assignments))
	for _, a := range assignments {
		status := byAssignment[a.ID].Status()
		result = append(result, model.AssignmentWithStatus{
			Assignment: a,
			Submitted:  status != model.NotSubmitted,
			Status:     status,
		})
	}
	return result, nil
}

// ForTeacher lists submissions across every course the teacher owns.
func (s *SubmissionService) ForTeacher(teacherID string) ([]model.Submission, error) {
	courseIDs, err := s.CourseRepo.IDsByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	assignmentIDs, err := s.AssignmentRepo.IDsByCourses(courseIDs)
	if err != nil {
		return nil, err
	}
	return s.SubmissionRepo.FindByAssignments(assignmentIDs)
}
