package db

import (
	"context"

	"github.com/edumart/edumart-back/internal/models"
)

func CreateFeedback(ctx context.Context, f *models.Feedback) error {
	return DB.WithContext(ctx).Create(f).Error
}

func ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := DB.WithContext(ctx).Order("created_at desc").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
