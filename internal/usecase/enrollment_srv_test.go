package usecase

import (
	"context"
	"testing"

	"event-booking/internal/dto/request"
	"event-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpsertEnrollment(t *testing.T) {
	store := newMemStore()
	svc := NewEnrollmentService(store.repository().Enrollment, zap.NewNop())
	ctx := context.Background()

	_, err := svc.GetEnrollment(ctx, testUserID)
	require.ErrorIs(t, err, utils.ErrNotFound)

	req := &request.EnrollmentRequest{
		Name:     "Fulano de Tal",
		CPF:      "98765432100",
		Birthday: "1995-04-21",
		Phone:    "21988887777",
	}
	created, err := svc.UpsertEnrollment(ctx, testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, "1995-04-21", created.Birthday)

	req.Name = "Fulano Atualizado"
	updated, err := svc.UpsertEnrollment(ctx, testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	found, err := svc.GetEnrollment(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Fulano Atualizado", found.Name)

	_, err = svc.UpsertEnrollment(ctx, testUserID+1, req)
	assert.ErrorIs(t, err, utils.ErrConflict)

	req.Birthday = "21/04/1995"
	_, err = svc.UpsertEnrollment(ctx, testUserID, req)
	assert.ErrorIs(t, err, utils.ErrBadRequest)
}
