package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

func CreateAssignment(ctx context.Context, a *models.Assignment) error {
	a.SubmissionCount = 0
	return DB.WithContext(ctx).Create(a).Error
}

func ListAssignmentsByClass(ctx context.Context, classID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := DB.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("created_at desc").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// RecordSubmission atomically bumps the submission counter.
func RecordSubmission(ctx context.Context, id uint) error {
	res := DB.WithContext(ctx).Model(&models.Assignment{}).
		Where("id = ?", id).
		UpdateColumn("submission_count", gorm.Expr("submission_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
