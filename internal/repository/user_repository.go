package repository

import (
	"learning_portal_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// FindByResetToken matches the stored token hash and requires an unexpired token.
func (r *UserRepository) FindByResetToken(hashed string, now time.Time) (*model.User, error) {
	var user model.User
	err := r.DB.Where("reset_password_token = ? AND reset_password_expires > ?", hashed, now).
		First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// Delete removes the row for real so the email can register again.
func (r *UserRepository) Delete(id string) error {
	return r.DB.Unscoped().Where("id = ?", id).Delete(&model.User{}).Error
}

func (r *UserRepository) FindByRole(role model.UserRole) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", role).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindPendingTeachers() ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ? AND is_approved = ?", model.Teacher, false).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) CountByRole(role model.UserRole) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountPendingTeachers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("role = ? AND is_approved = ?", model.Teacher, false).
		Count(&count).Error
	return count, err
}
