package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"learning_portal_backend/internal/config"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/testutil"

	"gorm.io/gorm"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []Email
	fail bool
}

func (m *recordingMailer) Send(_ context.Context, email Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("mail transport down")
	}
	m.sent = append(m.sent, email)
	return nil
}

func (m *recordingMailer) to(address string) []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Email
	for _, e := range m.sent {
		if e.To == address {
			out = append(out, e)
		}
	}
	return out
}

// env wires every service over one in-memory database.
type env struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer *recordingMailer
	policy *Policy

	notifications *repository.NotificationRepository
	reminderLogs  *repository.ReminderLogRepository

	auth         *AuthService
	admin        *AdminService
	courses      *CourseService
	enrollments  *EnrollmentService
	contents     *ContentService
	progress     *ProgressService
	assignments  *AssignmentService
	submissions  *SubmissionService
	messages     *MessageService
	notification *NotificationService
	dashboard    *DashboardService
	reminders    *ReminderService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.OpenDB(t)
	cfg := &config.Config{
		Server:   config.ServerConfig{ClientURL: "http://localhost:3000"},
		JWT:      config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Reminder: config.ReminderConfig{WindowHours: 24},
		Policy:   config.PolicyConfig{MinGrade: 0, MaxGrade: 100},
	}

	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	contents := repository.NewContentRepository(db)
	progress := repository.NewProgressRepository(db)
	assignments := repository.NewAssignmentRepository(db)
	submissions := repository.NewSubmissionRepository(db)
	messages := repository.NewMessageRepository(db)
	notifications := repository.NewNotificationRepository(db)
	reminderLogs := repository.NewReminderLogRepository(db)

	mailer := &recordingMailer{}
	notifier := NewNotifier(notifications, mailer)
	policy := NewPolicy(cfg.Policy)

	return &env{
		db:            db,
		cfg:           cfg,
		mailer:        mailer,
		policy:        policy,
		notifications: notifications,
		reminderLogs:  reminderLogs,
		auth:          NewAuthService(users, notifier, cfg),
		admin:         NewAdminService(users, courses, enrollments, notifier),
		courses:       NewCourseService(courses, enrollments),
		enrollments:   NewEnrollmentService(enrollments, courses, notifier),
		contents:      NewContentService(contents, courses, progress),
		progress:      NewProgressService(progress, contents),
		assignments:   NewAssignmentService(assignments, courses, enrollments, submissions, notifier),
		submissions:   NewSubmissionService(submissions, assignments, courses, notifier, policy),
		messages:      NewMessageService(messages, users, courses, enrollments, policy),
		notification:  NewNotificationService(notifications),
		dashboard:     NewDashboardService(users, courses, enrollments, assignments, submissions),
		reminders:     NewReminderService(assignments, enrollments, reminderLogs, notifier, nil, &cfg.Reminder),
	}
}

func float(v float64) *float64 { return &v }
