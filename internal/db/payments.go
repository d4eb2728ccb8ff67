package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

// RecordPayment inserts the payment and bumps the class enrollment
// counter in one transaction. OpKey makes the write idempotent: replaying
// a request with the same key returns the stored payment and leaves the
// counter alone.
func RecordPayment(ctx context.Context, p *models.Payment) error {
	if p.OpKey == "" {
		p.OpKey = uuid.NewString()
	}

	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prior models.Payment
		err := tx.Where("op_key = ?", p.OpKey).First(&prior).Error
		if err == nil {
			*p = prior
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		res := tx.Model(&models.Class{}).
			Where("id = ?", p.ClassID).
			UpdateColumn("total_enrollments", gorm.Expr("total_enrollments + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Create(p).Error
	})
}

func ListPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := DB.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func ListAllPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := DB.WithContext(ctx).Order("created_at").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListEnrolledClasses resolves the distinct classes this email has paid
// for. A class paid for twice appears once.
func ListEnrolledClasses(ctx context.Context, email string) ([]models.Class, error) {
	var ids []uint
	err := DB.WithContext(ctx).Model(&models.Payment{}).
		Where("email = ?", email).
		Distinct("class_id").
		Pluck("class_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Class{}, nil
	}

	var classes []models.Class
	if err := DB.WithContext(ctx).Where("id IN ?", ids).Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// ReconcileEnrollments recounts payments per class and repairs any
// counter drift. Returns the ids of classes that were corrected.
func ReconcileEnrollments(ctx context.Context) ([]uint, error) {
	var classes []models.Class
	if err := DB.WithContext(ctx).Find(&classes).Error; err != nil {
		return nil, err
	}

	var fixed []uint
	for _, class := range classes {
		var n int64
		err := DB.WithContext(ctx).Model(&models.Payment{}).
			Where("class_id = ?", class.ID).
			Count(&n).Error
		if err != nil {
			return fixed, err
		}
		if n == class.TotalEnrollments {
			continue
		}

		err = DB.WithContext(ctx).Model(&models.Class{}).
			Where("id = ?", class.ID).
			UpdateColumn("total_enrollments", n).Error
		if err != nil {
			return fixed, err
		}
		fixed = append(fixed, class.ID)
	}
	return fixed, nil
}
