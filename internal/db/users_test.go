package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

func TestRegisterUserIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	id1, created, err := RegisterUser(ctx, "a@x.com", "")
	require.NoError(t, err)
	assert.True(t, created)

	id2, created, err := RegisterUser(ctx, "a@x.com", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id1, id2)

	users, err := ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, models.RoleNormal, users[0].Role)
}

func TestRolePredicatesFailClosed(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	// Absent user means "no", not an error.
	admin, err := IsAdmin(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, admin)

	teacher, err := IsTeacher(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, teacher)

	_, _, err = RegisterUser(ctx, "boss@x.com", models.RoleAdmin)
	require.NoError(t, err)

	admin, err = IsAdmin(ctx, "boss@x.com")
	require.NoError(t, err)
	assert.True(t, admin)

	teacher, err = IsTeacher(ctx, "boss@x.com")
	require.NoError(t, err)
	assert.False(t, teacher)
}

func TestSetUserRole(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	id, _, err := RegisterUser(ctx, "a@x.com", "")
	require.NoError(t, err)

	require.NoError(t, SetUserRole(ctx, id, models.RoleTeacher))

	user, err := GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role)

	err = SetUserRole(ctx, 9999, models.RoleAdmin)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	id, _, err := RegisterUser(ctx, "a@x.com", "")
	require.NoError(t, err)

	require.NoError(t, DeleteUser(ctx, id))
	assert.ErrorIs(t, DeleteUser(ctx, id), gorm.ErrRecordNotFound)

	_, err = GetUserByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
