package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

// SubmitTeacherRequest creates a pending application. A prior request for
// the same email conflicts regardless of its status, unless allowReapply
// is set and that request was rejected, in which case the old row is
// reused as a fresh pending application.
func SubmitTeacherRequest(ctx context.Context, req *models.TeacherRequest, allowReapply bool) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.TeacherRequest
		err := tx.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			if !allowReapply || !existing.IsRejected() {
				return ErrConflict
			}
			req.ID = existing.ID
			req.Status = models.RequestStatusPending
			req.CreatedAt = time.Now()
			return tx.Model(&existing).
				Select("Name", "Image", "Title", "Experience", "Category", "Status", "CreatedAt").
				Updates(req).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		req.Status = models.RequestStatusPending
		return tx.Create(req).Error
	})
}

func GetTeacherRequestByEmail(ctx context.Context, email string) (*models.TeacherRequest, error) {
	var req models.TeacherRequest
	if err := DB.WithContext(ctx).Where("email = ?", email).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func ListTeacherRequests(ctx context.Context) ([]models.TeacherRequest, error) {
	var reqs []models.TeacherRequest
	if err := DB.WithContext(ctx).Order("created_at desc").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ApproveTeacherRequest marks the request accepted and promotes the
// matching account to teacher in one transaction, so a crash cannot
// leave an accepted request without the role change.
func ApproveTeacherRequest(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req models.TeacherRequest
		if err := tx.First(&req, id).Error; err != nil {
			return err
		}

		res := tx.Model(&models.TeacherRequest{}).
			Where("id = ? AND status <> ?", id, models.RequestStatusAccepted).
			Update("status", models.RequestStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// The applicant may never have registered; approving the
		// request alone is still valid in that case.
		return tx.Model(&models.User{}).
			Where("email = ?", req.Email).
			Update("role", models.RoleTeacher).Error
	})
}

func RejectTeacherRequest(ctx context.Context, id uint) error {
	res := DB.WithContext(ctx).Model(&models.TeacherRequest{}).
		Where("id = ? AND status <> ?", id, models.RequestStatusRejected).
		Update("status", models.RequestStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
