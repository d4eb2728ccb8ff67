package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

func newClass(email string) *models.Class {
	return &models.Class{
		Title:       "Go for beginners",
		Name:        "Jordan",
		Email:       email,
		Price:       4900,
		Description: "Slices, maps and goroutines",
		Image:       "https://img.example/go.png",
	}
}

func TestCreateClassDefaults(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	class := newClass("t@x.com")
	class.Status = models.ClassStatusApproved // must not stick
	class.TotalEnrollments = 42
	require.NoError(t, CreateClass(ctx, class))

	got, err := GetClassByID(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClassStatusPending, got.Status)
	assert.EqualValues(t, 0, got.TotalEnrollments)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestListApprovedFilters(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	a := newClass("t@x.com")
	require.NoError(t, CreateClass(ctx, a))
	b := newClass("t@x.com")
	require.NoError(t, CreateClass(ctx, b))

	require.NoError(t, SetClassStatus(ctx, a.ID, models.ClassStatusApproved))

	approved, err := ListApprovedClasses(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, a.ID, approved[0].ID)

	all, err := ListAllClasses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetClassStatusNotFound(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	err := SetClassStatus(ctx, 404, models.ClassStatusApproved)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateClassStripsIdentity(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	class := newClass("t@x.com")
	require.NoError(t, CreateClass(ctx, class))

	patch := map[string]interface{}{
		"status":            string(models.ClassStatusApproved),
		"id":                uint(999),
		"email":             "intruder@x.com",
		"total_enrollments": 1000,
	}
	require.NoError(t, UpdateClass(ctx, class.ID, patch))

	got, err := GetClassByID(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClassStatusApproved, got.Status)
	assert.Equal(t, "t@x.com", got.Email)
	assert.EqualValues(t, 0, got.TotalEnrollments)
}

func TestUpdateClassNotFound(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	err := UpdateClass(ctx, 404, map[string]interface{}{"title": "new"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteClassNotFound(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	class := newClass("t@x.com")
	require.NoError(t, CreateClass(ctx, class))

	require.NoError(t, DeleteClass(ctx, class.ID))
	assert.ErrorIs(t, DeleteClass(ctx, class.ID), gorm.ErrRecordNotFound)
}

func TestListClassesByTeacher(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, CreateClass(ctx, newClass("t1@x.com")))
	require.NoError(t, CreateClass(ctx, newClass("t1@x.com")))
	require.NoError(t, CreateClass(ctx, newClass("t2@x.com")))

	mine, err := ListClassesByTeacher(ctx, "t1@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
