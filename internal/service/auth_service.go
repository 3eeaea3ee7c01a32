package service

import (
	"context"
	"errors"
	"learning_portal_backend/internal/config"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/util"
	"learning_portal_backend/pkg/logger"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 10 * time.Minute

type RegisterRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Role     model.UserRole `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the user projection returned on login.
type LoginUser struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Role       model.UserRole `json:"role"`
	IsApproved bool           `json:"isApproved"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type AuthService struct {
	UserRepo *repository.UserRepository
	Notifier *Notifier
	Cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(userRepo *repository.UserRepository, notifier *Notifier, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Notifier: notifier,
		Cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, util.Validation("All fields are required")
	}
	if req.Role != model.Student && req.Role != model.Teacher {
		return nil, util.Validation("Role must be student or teacher")
	}

	exists, err := s.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.Validation("User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashedPassword),
		Role:       req.Role,
		IsApproved: req.Role != model.Teacher,
	}
	if err := s.UserRepo.Create(user); err != nil {
		if util.IsDuplicate(err) {
			return nil, util.Validation("User already exists")
		}
		return nil, err
	}

	if user.Role == model.Student {
		subject, body := welcomeEmail(user)
		s.Notifier.Email(ctx, user, subject, body)
	}
	return user, nil
}

func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	user, err := s.UserRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if user.Role == model.Teacher && !user.IsApproved {
		return nil, util.ErrPendingApproval
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User: LoginUser{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			IsApproved: user.IsApproved,
		},
	}, nil
}

// ForgotPassword stores the hash of a fresh reset token and emails the raw token as a link.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.UserRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return util.NotFoundOr(err, "User not found")
	}

	token, hashed, err := util.NewResetToken()
	if err != nil {
		return err
	}
	expires := s.now().Add(resetTokenTTL)
	user.ResetPasswordToken = &hashed
	user.ResetPasswordExpires = &expires
	if err := s.UserRepo.Update(user); err != nil {
		return err
	}

	link := strings.TrimRight(s.Cfg.Server.ClientURL, "/") + "/reset-password/" + token
	subject, body := resetRequestEmail(user, link)
	s.Notifier.Email(ctx, user, subject, body)
	return nil
}

// ResetPassword consumes a reset token. The token is cleared on success so it works once.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return util.ErrInvalidToken
	}
	user, err := s.UserRepo.FindByResetToken(util.HashResetToken(token), s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrInvalidToken
		}
		return err
	}

	if len(password) < util.MinPasswordLength {
		return util.Validation("Password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.ResetPasswordToken = nil
	user.ResetPasswordExpires = nil
	if err := s.UserRepo.Update(user); err != nil {
		return err
	}

	subject, body := resetDoneEmail(user)
	s.Notifier.Email(ctx, user, subject, body)
	return nil
}

// ResolveUser loads the user a verified token refers to.
func (s *AuthService) ResolveUser(id string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UpdateProfileImage(userID, url string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.NotFoundOr(err, "User not found")
	}
	user.ProfileImage = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin creates the configured admin account when no admin exists yet.
func (s *AuthService) EnsureAdmin(seed config.SeedConfig) error {
	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		return nil
	}
	count, err := s.UserRepo.CountByRole(model.Admin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := normalizeEmail(seed.AdminEmail)
	existing, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		existing.Role = model.Admin
		existing.IsApproved = true
		logger.Log.Info("Promoting seeded account to admin", zap.String("email", email))
		return s.UserRepo.Update(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:       seed.AdminName,
		Email:      email,
		Password:   string(hashedPassword),
		Role:       model.Admin,
		IsApproved: true,
	}
	if err := s.UserRepo.Create(admin); err != nil {
		return err
	}
	logger.Log.Info("Seeded admin account", zap.String("email", email))
	return nil
}
