package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

func newRequest(email string) *models.TeacherRequest {
	return &models.TeacherRequest{
		Name:       "Jordan",
		Email:      email,
		Image:      "https://img.example/jordan.png",
		Title:      "Calculus for everyone",
		Experience: "5 years",
		Category:   "math",
	}
}

func TestSubmitTeacherRequestConflicts(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, SubmitTeacherRequest(ctx, newRequest("a@x.com"), false))

	// Second submission conflicts while the first is pending.
	assert.ErrorIs(t, SubmitTeacherRequest(ctx, newRequest("a@x.com"), false), ErrConflict)

	req, err := GetTeacherRequestByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, RejectTeacherRequest(ctx, req.ID))

	// Still conflicts after rejection when reapply is off.
	assert.ErrorIs(t, SubmitTeacherRequest(ctx, newRequest("a@x.com"), false), ErrConflict)
}

func TestSubmitTeacherRequestReapply(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, SubmitTeacherRequest(ctx, newRequest("a@x.com"), true))

	// Reapply never bypasses a pending request.
	assert.ErrorIs(t, SubmitTeacherRequest(ctx, newRequest("a@x.com"), true), ErrConflict)

	req, err := GetTeacherRequestByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, RejectTeacherRequest(ctx, req.ID))

	// A rejected applicant may try again; the request is pending anew.
	require.NoError(t, SubmitTeacherRequest(ctx, newRequest("a@x.com"), true))

	again, err := GetTeacherRequestByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, again.Status)

	// Only one request row per email, ever.
	reqs, err := ListTeacherRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}

func TestApproveTeacherRequestPromotesUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, _, err := RegisterUser(ctx, "a@x.com", "")
	require.NoError(t, err)
	require.NoError(t, SubmitTeacherRequest(ctx, newRequest("a@x.com"), false))

	req, err := GetTeacherRequestByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, ApproveTeacherRequest(ctx, req.ID))

	req, err = GetTeacherRequestByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, req.Status)

	user, err := GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role)

	// Approving twice has no effect left to apply.
	assert.ErrorIs(t, ApproveTeacherRequest(ctx, req.ID), gorm.ErrRecordNotFound)
}

func TestApproveTeacherRequestNotFound(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	assert.ErrorIs(t, ApproveTeacherRequest(ctx, 404), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, RejectTeacherRequest(ctx, 404), gorm.ErrRecordNotFound)
}

func TestRejectTeacherRequestHasNoRoleSideEffect(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, _, err := RegisterUser(ctx, "a@x.com", "")
	require.NoError(t, err)
	require.NoError(t, SubmitTeacherRequest(ctx, newRequest("a@x.com"), false))

	req, err := GetTeacherRequestByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, RejectTeacherRequest(ctx, req.ID))

	user, err := GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleNormal, user.Role)
}
