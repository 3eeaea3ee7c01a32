package service

import (
	"context"
	"testing"
	"time"

	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/testutil"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderSweep_OncePerStudent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	s1 := testutil.CreateUser(t, e.db, "s1", model.Student)
	s2 := testutil.CreateUser(t, e.db, "s2", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	testutil.Enroll(t, e.db, s1, course)
	testutil.Enroll(t, e.db, s2, course)

	now := time.Now().UTC()
	e.reminders.now = func() time.Time { return now }
	testutil.CreateAssignment(t, e.db, course, "Due soon", now.Add(6*time.Hour))
	testutil.CreateAssignment(t, e.db, course, "Due later", now.Add(72*time.Hour))
	testutil.CreateAssignment(t, e.db, course, "Overdue", now.Add(-time.Hour))

	result, err := e.reminders.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, &SweepResult{Assignments: 1, Reminded: 2}, result)

	for _, s := range []*model.User{s1, s2} {
		mails := e.mailer.to(s.Email)
		require.Len(t, mails, 1)
		assert.Contains(t, mails[0].Subject, "Due soon")
	}

	// an hour later the assignment is still inside the window
	now = now.Add(time.Hour)
	result, err = e.reminders.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, &SweepResult{Assignments: 1, Skipped: 2}, result)
	assert.Len(t, e.mailer.to(s1.Email), 1)
}

func TestReminderSweep_NewEnrollmentStillReminded(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	s1 := testutil.CreateUser(t, e.db, "s1", model.Student)
	s2 := testutil.CreateUser(t, e.db, "s2", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	testutil.Enroll(t, e.db, s1, course)
	testutil.CreateAssignment(t, e.db, course, "Due soon", time.Now().Add(3*time.Hour))

	_, err := e.reminders.Sweep(ctx)
	require.NoError(t, err)

	testutil.Enroll(t, e.db, s2, course)
	result, err := e.reminders.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Reminded)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, e.mailer.to(s2.Email), 1)
}

func TestReminderSweep_EmailFailureKeepsClaimWhenNotified(t *testing.T) {
	e := newEnv(t)
	e.mailer.fail = true
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	testutil.Enroll(t, e.db, student, course)
	assignment := testutil.CreateAssignment(t, e.db, course, "Due soon", time.Now().Add(3*time.Hour))

	result, err := e.reminders.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Reminded)

	var count int64
	require.NoError(t, e.db.Model(&model.ReminderLog{}).Where("assignment_id = ?", assignment.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReminderSchedule(t *testing.T) {
	e := newEnv(t)
	c := cron.New()

	_, err := e.reminders.Schedule(c, "every blue moon")
	assert.Error(t, err)

	id, err := e.reminders.Schedule(c, "0 * * * *")
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Len(t, c.Entries(), 1)
}
