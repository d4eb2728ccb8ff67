package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

// RegisterUser is idempotent on email: a second registration returns the
// existing id without writing anything. New accounts default to normal.
func RegisterUser(ctx context.Context, email string, role models.Role) (uint, bool, error) {
	var existing models.User
	err := DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, err
	}

	if role == "" {
		role = models.RoleNormal
	}
	u := models.User{Email: email, Role: role}
	if err := DB.WithContext(ctx).Create(&u).Error; err != nil {
		return 0, false, err
	}
	return u.ID, true, nil
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserRole overwrites the role of the given account. The caller is
// responsible for having validated role against the closed enum.
func SetUserRole(ctx context.Context, id uint, role models.Role) error {
	res := DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsAdmin fails closed: an absent account is simply not an admin.
func IsAdmin(ctx context.Context, email string) (bool, error) {
	return hasRole(ctx, email, models.RoleAdmin)
}

func IsTeacher(ctx context.Context, email string) (bool, error) {
	return hasRole(ctx, email, models.RoleTeacher)
}

func hasRole(ctx context.Context, email string, role models.Role) (bool, error) {
	var user models.User
	err := DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == role, nil
}

func ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the account permanently. Classes and payments that
// reference its email are left in place.
func DeleteUser(ctx context.Context, id uint) error {
	res := DB.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
