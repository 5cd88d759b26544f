package usecase

import (
	"cinema-client/internal/data/remote"
	"cinema-client/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Catalog     CatalogService
	Booking     BookingService
	Reservation ReservationService
	Admin       AdminService
}

func NewService(r *remote.Remote, store *repository.Store, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(r, log),
		Catalog:     NewCatalogService(r, store, log),
		Booking:     NewBookingService(r, store, log),
		Reservation: NewReservationService(r, store, log),
		Admin:       NewAdminService(r, store, log),
	}
}
