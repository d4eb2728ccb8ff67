package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

func TestAssignmentSubmissions(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	class := newClass("t@x.com")
	require.NoError(t, CreateClass(ctx, class))

	a := &models.Assignment{ClassID: class.ID, Title: "Week 1 exercises"}
	require.NoError(t, CreateAssignment(ctx, a))

	require.NoError(t, RecordSubmission(ctx, a.ID))
	require.NoError(t, RecordSubmission(ctx, a.ID))

	list, err := ListAssignmentsByClass(ctx, class.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.EqualValues(t, 2, list[0].SubmissionCount)
}

func TestRecordSubmissionNotFound(t *testing.T) {
	setupTestDB(t)

	err := RecordSubmission(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
