package service

import (
	"srms-backend/internal/domain"
	"srms-backend/internal/storage"
)

type ReservationService struct {
	store *storage.Store
}

func NewReservationService(store *storage.Store) *ReservationService {
	return &ReservationService{store: store}
}

// Create appends the reservation and assigns the next sequential id.
// Reservations are immutable once created.
func (s *ReservationService) Create(res domain.Reservation) domain.Reservation {
	return s.store.CreateReservation(res)
}

func (s *ReservationService) List() []domain.Reservation {
	return s.store.ListReservations()
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
