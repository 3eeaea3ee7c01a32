package service

import (
	"context"
	"learning_portal_backend/internal/config"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/pkg/logger"
	"learning_portal_backend/pkg/monitoring"
	"learning_portal_backend/pkg/tracing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	reminderLockKey = "portal:reminder-sweep:lock"
	reminderLockTTL = 10 * time.Minute
)

// SweepResult summarizes one reminder sweep.
type SweepResult struct {
	Assignments int `json:"assignments"`
	Reminded    int `json:"reminded"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
}

// ReminderService reminds enrolled students of assignments due soon. Each
// (assignment, student) pair is reminded at most once, however often the sweep runs.
type ReminderService struct {
	AssignmentRepo *repository.AssignmentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ReminderRepo   *repository.ReminderLogRepository
	Notifier       *Notifier
	// Redis is optional. When set, only one instance sweeps at a time.
	Redis  *redis.Client
	Window time.Duration
	now    func() time.Time
}

func NewReminderService(
	assignmentRepo *repository.AssignmentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	reminderRepo *repository.ReminderLogRepository,
	notifier *Notifier,
	rdb *redis.Client,
	cfg *config.ReminderConfig,
) *ReminderService {
	window := time.Duration(cfg.WindowHours) * time.Hour
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &ReminderService{
		AssignmentRepo: assignmentRepo,
		EnrollmentRepo: enrollmentRepo,
		ReminderRepo:   reminderRepo,
		Notifier:       notifier,
		Redis:          rdb,
		Window:         window,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReminderService) acquireLock(ctx context.Context) (bool, error) {
	if s.Redis == nil {
		return true, nil
	}
	return s.Redis.SetNX(ctx, reminderLockKey, time.Now().UnixNano(), reminderLockTTL).Result()
}

func (s *ReminderService) releaseLock(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, reminderLockKey).Err(); err != nil {
		logger.Log.Warn("Failed to release reminder lock", zap.Error(err))
	}
}

// Sweep reminds every enrolled student of each assignment due in [now, now+Window].
func (s *ReminderService) Sweep(ctx context.Context) (*SweepResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "reminder.sweep")
	defer span.End()

	start := time.Now()
	defer func() {
		monitoring.ReminderSweepDuration.Observe(time.Since(start).Seconds())
	}()

	locked, err := s.acquireLock(ctx)
	if err != nil {
		return nil, err
	}
	if !locked {
		logger.Log.Info("Reminder sweep already running elsewhere, skipping")
		return &SweepResult{}, nil
	}
	defer s.releaseLock(context.Background())

	now := s.now()
	assignments, err := s.AssignmentRepo.FindDueBetween(now, now.Add(s.Window))
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Assignments: len(assignments)}
	for i := range assignments {
		assignment := &assignments[i]
		enrollments, err := s.EnrollmentRepo.FindByCourse(assignment.CourseID)
		if err != nil {
			logFanOutError("reminder", assignment.ID, err)
			result.Failed++
			continue
		}
		for _, e := range enrollments {
			if e.Student == nil {
				continue
			}
			claimed, err := s.ReminderRepo.Claim(assignment.ID, e.Student.ID, now)
			if err != nil {
				logger.Log.Warn("Failed to record reminder",
					zap.String("assignment_id", assignment.ID),
					zap.String("student_id", e.Student.ID),
					zap.Error(err),
				)
				result.Failed++
				continue
			}
			if !claimed {
				result.Skipped++
				continue
			}

			notified := s.Notifier.Notify(e.Student.ID, reminderNotice(assignment))
			subject, body := reminderEmail(e.Student, assignment)
			emailed := s.Notifier.Email(ctx, e.Student, subject, body)
			if !notified && !emailed {
				// nothing reached the student, let the next sweep try again
				if err := s.ReminderRepo.Release(assignment.ID, e.Student.ID); err != nil {
					logger.Log.Warn("Failed to release reminder claim", zap.Error(err))
				}
				result.Failed++
				continue
			}
			monitoring.RemindersSent.Inc()
			result.Reminded++
		}
	}

	span.SetAttributes(
		attribute.Int("reminder.assignments", result.Assignments),
		attribute.Int("reminder.sent", result.Reminded),
	)
	logger.Log.Info("Reminder sweep finished",
		zap.Int("assignments", result.Assignments),
		zap.Int("reminded", result.Reminded),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// Schedule registers the sweep on c with a standard five-field cron spec.
func (s *ReminderService) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderLockTTL)
		defer cancel()
		if _, err := s.Sweep(ctx); err != nil {
			logger.Log.Error("Reminder sweep failed", zap.Error(err))
		}
	})
}
