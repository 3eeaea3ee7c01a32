package service

import (
	"context"
	"testing"

	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/testutil"
	"learning_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")

	enrollment, err := e.enrollments.Enroll(ctx, student, course.ID)
	require.NoError(t, err)
	assert.False(t, enrollment.EnrolledAt.IsZero())

	_, err = e.enrollments.Enroll(ctx, student, course.ID)
	require.ErrorIs(t, err, util.ErrConflict)
	assert.Equal(t, "Already enrolled in this course", err.(*util.AppError).Message)

	var count int64
	require.NoError(t, e.db.Model(&model.Enrollment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	teacherNotes, err := e.notification.List(teacher.ID)
	require.NoError(t, err)
	assert.Len(t, teacherNotes, 1)
	studentNotes, err := e.notification.List(student.ID)
	require.NoError(t, err)
	assert.Len(t, studentNotes, 1)
	assert.Len(t, e.mailer.to(student.Email), 1)

	courses, err := e.enrollments.MyCourses(student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.NotNil(t, courses[0].Course)
	assert.Equal(t, "Go 101", courses[0].Course.Title)
}

func TestEnroll_Errors(t *testing.T) {
	e := newEnv(t)
	student := testutil.CreateUser(t, e.db, "student", model.Student)

	_, err := e.enrollments.Enroll(context.Background(), student, "")
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = e.enrollments.Enroll(context.Background(), student, "missing")
	assert.ErrorIs(t, err, util.ErrNotFound)

	err = e.enrollments.Unenroll(student.ID, "missing")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestEnroll_AgainAfterUnenroll(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")

	_, err := e.enrollments.Enroll(ctx, student, course.ID)
	require.NoError(t, err)
	require.NoError(t, e.enrollments.Unenroll(student.ID, course.ID))

	_, err = e.enrollments.Enroll(ctx, student, course.ID)
	assert.NoError(t, err)
}
