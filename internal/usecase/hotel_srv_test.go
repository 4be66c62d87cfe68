package usecase

import (
	"context"
	"testing"

	"event-booking/internal/data/entity"
	"event-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListHotels(t *testing.T) {
	tests := []struct {
		name    string
		seed    func(s *memStore)
		wantErr error
	}{
		{
			name: "paid ticket with hotel",
			seed: func(s *memStore) {
				e := s.addEnrollment(testUserID)
				s.addTicket(e.ID, s.addTicketType(600, false, true).ID, entity.TicketStatusPaid)
			},
		},
		{
			name: "remote ticket with hotel is accepted",
			seed: func(s *memStore) {
				e := s.addEnrollment(testUserID)
				s.addTicket(e.ID, s.addTicketType(100, true, true).ID, entity.TicketStatusPaid)
			},
		},
		{
			name:    "no ticket",
			seed:    func(s *memStore) { s.addEnrollment(testUserID) },
			wantErr: utils.ErrUnauthorized,
		},
		{
			name: "reserved ticket",
			seed: func(s *memStore) {
				e := s.addEnrollment(testUserID)
				s.addTicket(e.ID, s.addTicketType(600, false, true).ID, entity.TicketStatusReserved)
			},
			wantErr: utils.ErrUnauthorized,
		},
		{
			name: "paid ticket without hotel",
			seed: func(s *memStore) {
				e := s.addEnrollment(testUserID)
				s.addTicket(e.ID, s.addTicketType(250, false, false).ID, entity.TicketStatusPaid)
			},
			wantErr: utils.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.addHotel()
			store.addHotel()
			tt.seed(store)
			svc := NewHotelService(store.repository(), nil, zap.NewNop())

			hotels, err := svc.ListHotels(context.Background(), testUserID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, hotels)
				return
			}
			require.NoError(t, err)
			assert.Len(t, hotels, 2)
		})
	}
}

func TestListHotelRooms(t *testing.T) {
	store := newMemStore()
	hotel := store.addHotel()
	other := store.addHotel()
	store.addRoom(hotel.ID, 1)
	store.addRoom(hotel.ID, 3)
	store.addRoom(other.ID, 2)
	svc := NewHotelService(store.repository(), nil, zap.NewNop())

	t.Run("rooms of the hotel only", func(t *testing.T) {
		resp, err := svc.ListHotelRooms(context.Background(), hotel.ID)

		require.NoError(t, err)
		assert.Equal(t, hotel.ID, resp.ID)
		require.Len(t, resp.Rooms, 2)
		for _, room := range resp.Rooms {
			assert.Equal(t, hotel.ID, room.HotelID)
		}
	})

	t.Run("unknown hotel", func(t *testing.T) {
		_, err := svc.ListHotelRooms(context.Background(), 9999)
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})
}
