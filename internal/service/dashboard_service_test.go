package service

import (
	"context"
	"testing"
	"time"

	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	e := newEnv(t)
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	pending := testutil.CreateUser(t, e.db, "pending", model.Teacher)
	require.NoError(t, e.db.Model(pending).Update("is_approved", false).Error)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	admin := testutil.CreateUser(t, e.db, "admin", model.Admin)

	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")
	testutil.CreateCourse(t, e.db, teacher, "Go 201")
	testutil.Enroll(t, e.db, student, course)
	a1 := testutil.CreateAssignment(t, e.db, course, "One", time.Now().Add(time.Hour))
	testutil.CreateAssignment(t, e.db, course, "Two", time.Now().Add(2*time.Hour))
	_, err := e.submissions.Submit(context.Background(), student, a1.ID, SubmitRequest{Content: "done"})
	require.NoError(t, err)

	stats, err := e.dashboard.Stats(student)
	require.NoError(t, err)
	assert.Equal(t, &StudentStats{EnrolledCourses: 1, TotalAssignments: 2, SubmittedAssignments: 1, PendingAssignments: 1}, stats)

	stats, err = e.dashboard.Stats(teacher)
	require.NoError(t, err)
	assert.Equal(t, &TeacherStats{CoursesTaught: 2, TotalAssignments: 2, TotalSubmissions: 1}, stats)

	stats, err = e.dashboard.Stats(admin)
	require.NoError(t, err)
	assert.Equal(t, &AdminStats{TotalStudents: 1, TotalTeachers: 2, PendingTeachers: 1, TotalCourses: 2}, stats)
}
