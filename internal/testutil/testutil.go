// Package testutil provides an in-memory database and fixtures for package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"learning_portal_backend/internal/model"
	"learning_portal_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Password is the plain text password of every fixture user.
const Password = "secret123"

var dbSeq atomic.Int64

// OpenDB returns a migrated sqlite database private to the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:portal_test_%d_%d?mode=memory&cache=shared", time.Now().UnixNano(), dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser stores an approved user with the fixture password.
func CreateUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Name:       name,
		Email:      fmt.Sprintf("%s@portal.test", name),
		Password:   string(hashed),
		Role:       role,
		IsApproved: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateCourse(t *testing.T, db *gorm.DB, teacher *model.User, title string) *model.Course {
	t.Helper()

	course := &model.Course{Title: title, Description: title + " description", TeacherID: teacher.ID}
	require.NoError(t, db.Create(course).Error)
	return course
}

func Enroll(t *testing.T, db *gorm.DB, student *model.User, course *model.Course) *model.Enrollment {
	t.Helper()

	enrollment := &model.Enrollment{StudentID: student.ID, CourseID: course.ID, EnrolledAt: time.Now().UTC()}
	require.NoError(t, db.Create(enrollment).Error)
	return enrollment
}

func CreateAssignment(t *testing.T, db *gorm.DB, course *model.Course, title string, due time.Time) *model.Assignment {
	t.Helper()

	assignment := &model.Assignment{CourseID: course.ID, Title: title, DueDate: due.UTC()}
	require.NoError(t, db.Create(assignment).Error)
	return assignment
}
