package service

import (
	"context"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/pkg/logger"
	"learning_portal_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Notifier delivers the side effects of domain operations: in-app
// notifications and email. Failures are logged and never returned, so a
// broken mail transport cannot fail the operation that triggered it.
type Notifier struct {
	NotificationRepo *repository.NotificationRepository
	Mailer           Mailer
}

func NewNotifier(notificationRepo *repository.NotificationRepository, mailer Mailer) *Notifier {
	return &Notifier{
		NotificationRepo: notificationRepo,
		Mailer:           mailer,
	}
}

// Notify writes one in-app notification. It reports whether the write succeeded.
func (n *Notifier) Notify(userID, message string) bool {
	notification := &model.Notification{UserID: userID, Message: message}
	if err := n.NotificationRepo.Create(notification); err != nil {
		logger.Log.Warn("Failed to create notification",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return false
	}
	monitoring.NotificationsCreated.Inc()
	return true
}

// Email sends one message to user. It reports whether delivery succeeded.
func (n *Notifier) Email(ctx context.Context, user *model.User, subject, body string) bool {
	if user == nil || user.Email == "" {
		return false
	}
	err := n.Mailer.Send(ctx, Email{
		To:      user.Email,
		ToName:  user.Name,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		monitoring.EmailsSent.WithLabelValues("failed").Inc()
		logger.Log.Warn("Failed to send email",
			zap.String("user_id", user.ID),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return false
	}
	monitoring.EmailsSent.WithLabelValues("sent").Inc()
	return true
}

func logFanOutError(event, id string, err error) {
	logger.Log.Warn("Notification fan-out failed",
		zap.String("event", event),
		zap.String("id", id),
		zap.Error(err),
	)
}
