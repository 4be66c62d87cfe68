package usecase

import (
	"context"
	"errors"
	"testing"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"
	"event-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetTicketTypes(t *testing.T) {
	store := newMemStore()
	svc := NewTicketService(store.repository(), nil, zap.NewNop())

	types, err := svc.GetTicketTypes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, types)
	assert.Empty(t, types)

	store.addTicketType(100, true, false)
	store.addTicketType(600, false, true)
	types, err = svc.GetTicketTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.True(t, types[0].IsRemote)
	assert.True(t, types[1].IncludesHotel)

	store.failWith = errors.New("connection reset")
	_, err = svc.GetTicketTypes(context.Background())
	assert.Error(t, err)
}

func TestCreateTicket(t *testing.T) {
	t.Run("reserves a ticket", func(t *testing.T) {
		store := newMemStore()
		store.addEnrollment(testUserID)
		tt := store.addTicketType(600, false, true)
		svc := NewTicketService(store.repository(), nil, zap.NewNop())

		ticket, err := svc.CreateTicket(context.Background(), testUserID, &request.CreateTicketRequest{TicketTypeID: tt.ID})

		require.NoError(t, err)
		assert.Equal(t, entity.TicketStatusReserved, ticket.Status)
		require.NotNil(t, ticket.TicketType)
		assert.Equal(t, 600, ticket.TicketType.Price)

		found, err := svc.GetUserTicket(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, ticket.ID, found.ID)
	})

	t.Run("missing enrollment", func(t *testing.T) {
		store := newMemStore()
		tt := store.addTicketType(600, false, true)
		svc := NewTicketService(store.repository(), nil, zap.NewNop())

		_, err := svc.CreateTicket(context.Background(), testUserID, &request.CreateTicketRequest{TicketTypeID: tt.ID})
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	t.Run("missing ticket type", func(t *testing.T) {
		store := newMemStore()
		store.addEnrollment(testUserID)
		svc := NewTicketService(store.repository(), nil, zap.NewNop())

		_, err := svc.CreateTicket(context.Background(), testUserID, &request.CreateTicketRequest{TicketTypeID: 404})
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	t.Run("missing ticket type id", func(t *testing.T) {
		svc := NewTicketService(newMemStore().repository(), nil, zap.NewNop())

		_, err := svc.CreateTicket(context.Background(), testUserID, &request.CreateTicketRequest{})
		assert.ErrorIs(t, err, utils.ErrBadRequest)
	})
}

func TestGetUserTicketWithoutTicket(t *testing.T) {
	store := newMemStore()
	store.addEnrollment(testUserID)
	svc := NewTicketService(store.repository(), nil, zap.NewNop())

	_, err := svc.GetUserTicket(context.Background(), testUserID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
