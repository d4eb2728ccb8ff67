package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

func CreateClass(ctx context.Context, class *models.Class) error {
	class.Status = models.ClassStatusPending
	class.TotalEnrollments = 0
	return DB.WithContext(ctx).Create(class).Error
}

func ListApprovedClasses(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	err := DB.WithContext(ctx).
		Where("status = ?", models.ClassStatusApproved).
		Order("created_at desc").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func ListAllClasses(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := DB.WithContext(ctx).Order("created_at desc").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func GetClassByID(ctx context.Context, id uint) (*models.Class, error) {
	var class models.Class
	if err := DB.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func ListClassesByTeacher(ctx context.Context, email string) ([]models.Class, error) {
	var classes []models.Class
	err := DB.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at desc").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func SetClassStatus(ctx context.Context, id uint, status models.ClassStatus) error {
	res := DB.WithContext(ctx).Model(&models.Class{}).
		Where("id = ? AND status <> ?", id, status).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateClass merges the given fields into the class. Identity and
// counter columns are stripped so a patch cannot move a class or forge
// its enrollment count.
func UpdateClass(ctx context.Context, id uint, patch map[string]interface{}) error {
	delete(patch, "id")
	delete(patch, "email")
	delete(patch, "total_enrollments")
	delete(patch, "created_at")
	if len(patch) == 0 {
		return nil
	}

	res := DB.WithContext(ctx).Model(&models.Class{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteClass(ctx context.Context, id uint) error {
	res := DB.WithContext(ctx).Delete(&models.Class{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
