package service

import (
	"context"
	"testing"
	"time"

	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/testutil"
	"learning_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A teacher posts an assignment to two enrolled students, one submits and is graded.
func TestAssignmentLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	s1 := testutil.CreateUser(t, e.db, "s1", model.Student)
	s2 := testutil.CreateUser(t, e.db, "s2", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	testutil.Enroll(t, e.db, s1, course)
	testutil.Enroll(t, e.db, s2, course)

	due := time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)
	assignment, err := e.assignments.Create(ctx, teacher.ID, AssignmentRequest{
		CourseID: course.ID,
		Title:    "Essay",
		DueDate:  due,
	})
	require.NoError(t, err)

	for _, s := range []*model.User{s1, s2} {
		notes, err := e.notification.List(s.ID)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Contains(t, notes[0].Message, "Essay")
		assert.Len(t, e.mailer.to(s.Email), 1)
	}

	submission, err := e.submissions.Submit(ctx, s1, assignment.ID, SubmitRequest{File: "/uploads/1-essay.pdf"})
	require.NoError(t, err)
	assert.Nil(t, submission.Grade)
	assert.Equal(t, model.Submitted, submission.Status())

	_, err = e.submissions.Submit(ctx, s1, assignment.ID, SubmitRequest{Content: "again"})
	require.ErrorIs(t, err, util.ErrConflict)

	graded, err := e.submissions.Grade(ctx, teacher.ID, submission.ID, GradeRequest{Grade: float(85), Feedback: "Good work"})
	require.NoError(t, err)
	assert.Equal(t, model.Graded, graded.Status())

	mine, err := e.submissions.MySubmission(s1.ID, assignment.ID)
	require.NoError(t, err)
	require.NotNil(t, mine.Grade)
	assert.Equal(t, 85.0, *mine.Grade)
	assert.Equal(t, "Good work", mine.Feedback)

	_, err = e.submissions.MySubmission(s2.ID, assignment.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)

	statuses, err := e.submissions.CourseAssignments(s2.ID, course.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Submitted)
	assert.Equal(t, model.NotSubmitted, statuses[0].Status)

	statuses, err = e.submissions.CourseAssignments(s1.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, statuses[0].Submitted)
	assert.Equal(t, model.Graded, statuses[0].Status)

	forTeacher, err := e.submissions.ForTeacher(teacher.ID)
	require.NoError(t, err)
	assert.Len(t, forTeacher, 1)
}

func TestGrade_Ownership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	intruder := testutil.CreateUser(t, e.db, "intruder", model.Teacher)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	assignment := testutil.CreateAssignment(t, e.db, course, "Essay", time.Now().Add(48*time.Hour))

	submission, err := e.submissions.Submit(ctx, student, assignment.ID, SubmitRequest{Content: "done"})
	require.NoError(t, err)

	_, err = e.submissions.Grade(ctx, intruder.ID, submission.ID, GradeRequest{Grade: float(10)})
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = e.submissions.ByAssignment(intruder.ID, assignment.ID)
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = e.assignments.Update(intruder.ID, assignment.ID, AssignmentRequest{Title: "Mine"})
	assert.ErrorIs(t, err, util.ErrForbidden)

	assert.ErrorIs(t, e.assignments.Delete(intruder.ID, assignment.ID), util.ErrForbidden)

	_, err = e.submissions.Grade(ctx, teacher.ID, "missing", GradeRequest{Grade: float(10)})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestGrade_Policy(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	assignment := testutil.CreateAssignment(t, e.db, course, "Essay", time.Now().Add(48*time.Hour))
	submission, err := e.submissions.Submit(ctx, student, assignment.ID, SubmitRequest{})
	require.NoError(t, err)

	_, err = e.submissions.Grade(ctx, teacher.ID, submission.ID, GradeRequest{})
	assert.ErrorIs(t, err, util.ErrValidation)

	// out of range grades pass until the policy is switched on
	_, err = e.submissions.Grade(ctx, teacher.ID, submission.ID, GradeRequest{Grade: float(150)})
	require.NoError(t, err)

	p := e.policy.Get()
	p.EnforceGradeRange = true
	e.policy.Set(p)

	_, err = e.submissions.Grade(ctx, teacher.ID, submission.ID, GradeRequest{Grade: float(150)})
	require.ErrorIs(t, err, util.ErrValidation)
	assert.Equal(t, "Grade must be between 0 and 100", err.(*util.AppError).Message)

	regraded, err := e.submissions.Grade(ctx, teacher.ID, submission.ID, GradeRequest{Grade: float(70), Feedback: "ok"})
	require.NoError(t, err)
	assert.Equal(t, 70.0, *regraded.Grade)
}

func TestSubmit_MailFailureDoesNotFail(t *testing.T) {
	e := newEnv(t)
	e.mailer.fail = true
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	assignment := testutil.CreateAssignment(t, e.db, course, "Essay", time.Now().Add(48*time.Hour))

	_, err := e.submissions.Submit(context.Background(), student, assignment.ID, SubmitRequest{Content: "done"})
	require.NoError(t, err)

	count, err := e.notification.UnreadCount(student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAssignment_CreateValidation(t *testing.T) {
	e := newEnv(t)
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")

	_, err := e.assignments.Create(context.Background(), teacher.ID, AssignmentRequest{CourseID: course.ID, Title: "Essay"})
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = e.assignments.Create(context.Background(), teacher.ID, AssignmentRequest{CourseID: course.ID, Title: "Essay", DueDate: "next week"})
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestAssignment_DeleteRemovesSubmissions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	assignment := testutil.CreateAssignment(t, e.db, course, "Essay", time.Now().Add(48*time.Hour))
	_, err := e.submissions.Submit(ctx, student, assignment.ID, SubmitRequest{Content: "done"})
	require.NoError(t, err)

	require.NoError(t, e.assignments.Delete(teacher.ID, assignment.ID))

	mine, err := e.submissions.MySubmissions(student.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
