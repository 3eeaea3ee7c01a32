package service

import (
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"strings"
	"time"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	CourseID   string `json:"courseId"`
	Message    string `json:"message"`
}

type MessageService struct {
	MessageRepo    *repository.MessageRepository
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Policy         *Policy
	now            func() time.Time
}

func NewMessageService(
	messageRepo *repository.MessageRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	policy *Policy,
) *MessageService {
	return &MessageService{
		MessageRepo:    messageRepo,
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Policy:         policy,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// isMember reports whether the user teaches or is enrolled in the course.
func (s *MessageService) isMember(course *model.Course, userID string) (bool, error) {
	if util.IsOwner(userID, course.TeacherID) {
		return true, nil
	}
	return s.EnrollmentRepo.Exists(userID, course.ID)
}

func (s *MessageService) Send(senderID string, req SendMessageRequest) (*model.Message, error) {
	text := strings.TrimSpace(req.Message)
	if req.ReceiverID == "" || req.CourseID == "" || text == "" {
		return nil, util.Validation("receiverId, courseId and message are required")
	}

	course, err := s.CourseRepo.FindByID(req.CourseID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Course not found")
	}
	receiver, err := s.UserRepo.FindByID(req.ReceiverID)
	if err != nil {
		return nil, util.NotFoundOr(err, "Receiver not found")
	}

	if s.Policy.Get().RequireCourseMembership {
		for _, id := range []string{senderID, receiver.ID} {
			ok, err := s.isMember(course, id)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, util.Forbidden("Sender and receiver must both belong to the course")
			}
		}
	}

	message := &model.Message{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		CourseID:   course.ID,
		Text:       text,
		SentAt:     s.now(),
	}
	if err := s.MessageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Conversation returns the messages between the caller and otherID in a course, oldest first.
func (s *MessageService) Conversation(callerID, otherID, courseID string) ([]model.Message, error) {
	return s.MessageRepo.FindConversation(callerID, otherID, courseID)
}

// Threads builds the caller's inbox for a course: the latest message per
// counterpart, most recent first.
func (s *MessageService) Threads(callerID, userID, courseID string) ([]model.Thread, error) {
	if !util.IsOwner(callerID, userID) {
		return nil, util.Forbidden("You can only view your own threads")
	}
	messages, err := s.MessageRepo.FindInvolving(userID, courseID)
	if err != nil {
		return nil, err
	}
	return groupThreads(userID, messages), nil
}

// groupThreads expects messages sorted newest first and keeps the first one per counterpart.
func groupThreads(userID string, messages []model.Message) []model.Thread {
	seen := make(map[string]bool)
	threads := make([]model.Thread, 0)
	for _, m := range messages {
		other, counterpart := m.SenderID, m.Sender
		if m.SenderID == userID {
			other, counterpart = m.ReceiverID, m.Receiver
		}
		if seen[other] {
			continue
		}
		seen[other] = true
		// counterpart accounts that no longer exist drop out of the inbox
		if counterpart == nil {
			continue
		}
		threads = append(threads, model.Thread{
			ThreadID:      other,
			Name:          counterpart.Name,
			Email:         counterpart.Email,
			LastMessage:   m.Text,
			LastMessageAt: m.SentAt,
		})
	}
	return threads
}
