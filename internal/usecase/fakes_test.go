package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/pkg/events"
)

// memStore backs every fake repository with maps guarded by one mutex, so
// guarded booking writes behave like the row-locked SQL version.
type memStore struct {
	mu          sync.Mutex
	nextID      int
	users       map[int]*entity.User
	sessions    map[string]*entity.Session
	enrollments map[int]*entity.Enrollment
	ticketTypes map[int]*entity.TicketType
	tickets     map[int]*entity.Ticket
	hotels      map[int]*entity.Hotel
	rooms       map[int]*entity.Room
	bookings    map[int]*entity.Booking
	payments    map[int]*entity.Payment

	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[int]*entity.User{},
		sessions:    map[string]*entity.Session{},
		enrollments: map[int]*entity.Enrollment{},
		ticketTypes: map[int]*entity.TicketType{},
		tickets:     map[int]*entity.Ticket{},
		hotels:      map[int]*entity.Hotel{},
		rooms:       map[int]*entity.Room{},
		bookings:    map[int]*entity.Booking{},
		payments:    map[int]*entity.Payment{},
	}
}

func (s *memStore) repository() *repository.Repository {
	return &repository.Repository{
		User:       fakeUserRepo{s},
		Session:    fakeSessionRepo{s},
		Enrollment: fakeEnrollmentRepo{s},
		Ticket:     fakeTicketRepo{s},
		Hotel:      fakeHotelRepo{s},
		Booking:    fakeBookingRepo{s},
		Payment:    fakePaymentRepo{s},
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

// Seed helpers. They return the stored entity for use in assertions.

func (s *memStore) addEnrollment(userID int) *entity.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &entity.Enrollment{UserID: userID, Name: "Fulano", CPF: "12345678901", Phone: "21999999999"}
	e.ID = s.id()
	s.enrollments[e.ID] = e
	return e
}

func (s *memStore) addTicketType(price int, remote, hotel bool) *entity.TicketType {
	s.mu.Lock()
	defer s.mu.Unlock()
	tt := &entity.TicketType{Name: "Presencial", Price: price, IsRemote: remote, IncludesHotel: hotel}
	tt.ID = s.id()
	s.ticketTypes[tt.ID] = tt
	return tt
}

func (s *memStore) addTicket(enrollmentID, ticketTypeID int, status entity.TicketStatus) *entity.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &entity.Ticket{EnrollmentID: enrollmentID, TicketTypeID: ticketTypeID, Status: status}
	t.ID = s.id()
	s.tickets[t.ID] = t
	return t
}

func (s *memStore) addHotel() *entity.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &entity.Hotel{Name: "Driven Resort", Image: "https://example.com/hotel.png"}
	h.ID = s.id()
	s.hotels[h.ID] = h
	return h
}

func (s *memStore) addRoom(hotelID, capacity int) *entity.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &entity.Room{HotelID: hotelID, Name: "101", Capacity: capacity}
	r.ID = s.id()
	s.rooms[r.ID] = r
	return r
}

func (s *memStore) addBooking(userID, roomID int) *entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &entity.Booking{UserID: userID, RoomID: roomID}
	b.ID = s.id()
	s.bookings[b.ID] = b
	return b
}

// eligibleUser seeds an enrollment with a paid, in-person, hotel ticket.
func (s *memStore) eligibleUser(userID int) {
	e := s.addEnrollment(userID)
	tt := s.addTicketType(600, false, true)
	s.addTicket(e.ID, tt.ID, entity.TicketStatusPaid)
}

func (s *memStore) occupancy(roomID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n
}

func (s *memStore) withType(t *entity.Ticket) *entity.Ticket {
	cp := *t
	if tt, ok := s.ticketTypes[t.TicketTypeID]; ok {
		ttCopy := *tt
		cp.TicketType = &ttCopy
	}
	if e, ok := s.enrollments[t.EnrollmentID]; ok {
		eCopy := *e
		cp.Enrollment = &eCopy
	}
	return &cp
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

type fakeUserRepo struct{ s *memStore }

func (f fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = f.s.id()
	cp := *user
	f.s.users[user.ID] = &cp
	return nil
}

func (f fakeUserRepo) FindByID(_ context.Context, id int) (*entity.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if u, ok := f.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct{ s *memStore }

func (f fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.sessions[session.Token]; ok {
		return repository.ErrDuplicate
	}
	session.ID = f.s.id()
	cp := *session
	f.s.sessions[session.Token] = &cp
	return nil
}

func (f fakeSessionRepo) FindByToken(_ context.Context, token string) (*entity.Session, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if sess, ok := f.s.sessions[token]; ok {
		cp := *sess
		return &cp, nil
	}
	return nil, nil
}

type fakeEnrollmentRepo struct{ s *memStore }

func (f fakeEnrollmentRepo) FindByUserID(_ context.Context, userID int) (*entity.Enrollment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	for _, e := range f.s.enrollments {
		if e.UserID == userID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f fakeEnrollmentRepo) Upsert(_ context.Context, enrollment *entity.Enrollment) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, e := range f.s.enrollments {
		if e.CPF == enrollment.CPF && e.UserID != enrollment.UserID {
			return repository.ErrDuplicate
		}
	}
	for _, e := range f.s.enrollments {
		if e.UserID == enrollment.UserID {
			enrollment.ID = e.ID
			cp := *enrollment
			f.s.enrollments[e.ID] = &cp
			return nil
		}
	}
	enrollment.ID = f.s.id()
	cp := *enrollment
	f.s.enrollments[enrollment.ID] = &cp
	return nil
}

type fakeTicketRepo struct{ s *memStore }

func (f fakeTicketRepo) FindTypes(_ context.Context) ([]*entity.TicketType, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	types := []*entity.TicketType{}
	for _, id := range sortedKeys(f.s.ticketTypes) {
		cp := *f.s.ticketTypes[id]
		types = append(types, &cp)
	}
	return types, nil
}

func (f fakeTicketRepo) FindTypeByID(_ context.Context, id int) (*entity.TicketType, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if tt, ok := f.s.ticketTypes[id]; ok {
		cp := *tt
		return &cp, nil
	}
	return nil, nil
}

func (f fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	ticket.ID = f.s.id()
	cp := *ticket
	f.s.tickets[ticket.ID] = &cp
	return nil
}

func (f fakeTicketRepo) FindByID(_ context.Context, id int) (*entity.Ticket, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if t, ok := f.s.tickets[id]; ok {
		return f.s.withType(t), nil
	}
	return nil, nil
}

func (f fakeTicketRepo) FindByEnrollmentID(_ context.Context, enrollmentID int) (*entity.Ticket, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, id := range sortedKeys(f.s.tickets) {
		if t := f.s.tickets[id]; t.EnrollmentID == enrollmentID {
			return f.s.withType(t), nil
		}
	}
	return nil, nil
}

func (f fakeTicketRepo) FindByUserID(ctx context.Context, userID int) (*entity.Ticket, error) {
	return f.findForUser(userID, func(*entity.Ticket) bool { return true })
}

func (f fakeTicketRepo) FindPaidHotelTicketByUserID(_ context.Context, userID int) (*entity.Ticket, error) {
	return f.findForUser(userID, func(t *entity.Ticket) bool {
		return t.Status == entity.TicketStatusPaid && t.TicketType != nil && t.TicketType.IncludesHotel
	})
}

func (f fakeTicketRepo) findForUser(userID int, match func(*entity.Ticket) bool) (*entity.Ticket, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	for _, id := range sortedKeys(f.s.tickets) {
		t := f.s.withType(f.s.tickets[id])
		if t.Enrollment != nil && t.Enrollment.UserID == userID && match(t) {
			return t, nil
		}
	}
	return nil, nil
}

type fakeHotelRepo struct{ s *memStore }

func (f fakeHotelRepo) FindAll(_ context.Context) ([]*entity.Hotel, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	hotels := []*entity.Hotel{}
	for _, id := range sortedKeys(f.s.hotels) {
		cp := *f.s.hotels[id]
		hotels = append(hotels, &cp)
	}
	return hotels, nil
}

func (f fakeHotelRepo) FindByID(_ context.Context, id int) (*entity.Hotel, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if h, ok := f.s.hotels[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, nil
}

func (f fakeHotelRepo) FindRoomsByHotelID(_ context.Context, hotelID int) ([]*entity.Room, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rooms := []*entity.Room{}
	for _, id := range sortedKeys(f.s.rooms) {
		if r := f.s.rooms[id]; r.HotelID == hotelID {
			cp := *r
			rooms = append(rooms, &cp)
		}
	}
	return rooms, nil
}

type fakeBookingRepo struct{ s *memStore }

func (f fakeBookingRepo) FindByUserID(_ context.Context, userID int) (*entity.Booking, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, b := range f.s.bookings {
		if b.UserID == userID {
			cp := *b
			if r, ok := f.s.rooms[b.RoomID]; ok {
				room := *r
				cp.Room = &room
			}
			return &cp, nil
		}
	}
	return nil, nil
}

// lockedRoom must be called with the mutex held.
func (f fakeBookingRepo) lockedRoom(roomID int) (*entity.Room, int) {
	r, ok := f.s.rooms[roomID]
	if !ok {
		return nil, 0
	}
	occupied := 0
	for _, b := range f.s.bookings {
		if b.RoomID == roomID {
			occupied++
		}
	}
	cp := *r
	return &cp, occupied
}

func (f fakeBookingRepo) Create(_ context.Context, userID, roomID int, guard repository.RoomGuard) (*entity.Booking, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	room, occupied := f.lockedRoom(roomID)
	if err := guard(room, occupied); err != nil {
		return nil, err
	}
	for _, b := range f.s.bookings {
		if b.UserID == userID {
			return nil, repository.ErrDuplicate
		}
	}

	b := &entity.Booking{UserID: userID, RoomID: roomID, Room: room}
	b.ID = f.s.id()
	cp := *b
	f.s.bookings[b.ID] = &cp
	return b, nil
}

func (f fakeBookingRepo) UpdateRoom(_ context.Context, bookingID, roomID int, guard repository.RoomGuard) (*entity.Booking, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	room, occupied := f.lockedRoom(roomID)
	if err := guard(room, occupied); err != nil {
		return nil, err
	}
	b, ok := f.s.bookings[bookingID]
	if !ok {
		return nil, errors.New("booking not found")
	}
	b.RoomID = roomID
	cp := *b
	cp.Room = room
	return &cp, nil
}

type fakePaymentRepo struct{ s *memStore }

func (f fakePaymentRepo) FindByTicketID(_ context.Context, ticketID int) (*entity.Payment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.payments {
		if p.TicketID == ticketID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f fakePaymentRepo) CreateAndMarkTicketPaid(_ context.Context, payment *entity.Payment) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	t, ok := f.s.tickets[payment.TicketID]
	if !ok {
		return errors.New("ticket not found")
	}
	if t.Status != entity.TicketStatusReserved {
		return repository.ErrTicketAlreadyPaid
	}
	payment.ID = f.s.id()
	cp := *payment
	f.s.payments[payment.ID] = &cp
	t.Status = entity.TicketStatusPaid
	return nil
}

// recordingPublisher keeps every published routing key.
type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

var _ events.Publisher = (*recordingPublisher)(nil)
