package usecase

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/data/remote"
	"cinema-client/internal/data/repository"
	"cinema-client/internal/dto/view"

	"go.uber.org/zap"
)

type ReservationService interface {
	// ListByMovie returns every reservation against the movie, resolved for
	// display. Used by the admin reservation table.
	ListByMovie(ctx context.Context, movieID string) ([]view.ReservationView, error)

	// History returns the current user's own reservations, resolved for
	// display. The username comes from the credential, not the caller.
	History(ctx context.Context) ([]view.ReservationView, error)
}

type reservationService struct {
	remote *remote.Remote
	store  *repository.Store
	log    *zap.Logger
}

func NewReservationService(r *remote.Remote, store *repository.Store, log *zap.Logger) ReservationService {
	return &reservationService{
		remote: r,
		store:  store,
		log:    log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) ListByMovie(ctx context.Context, movieID string) ([]view.ReservationView, error) {
	reservations, err := s.remote.Reservation.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	s.store.ReplaceReservations(reservations)
	views := s.resolve(reservations)

	s.log.Info("Movie reservations retrieved",
		zap.String("movie_uid", movieID),
		zap.Int("count", len(views)),
	)
	return views, nil
}

func (s *reservationService) History(ctx context.Context) ([]view.ReservationView, error) {
	identity, err := s.remote.Auth.Verify(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	reservations, err := s.remote.Reservation.ListByUsername(ctx, identity.Username)
	if err != nil {
		return nil, fmt.Errorf("list reservation history: %w", err)
	}

	s.store.ReplaceReservations(reservations)
	views := s.resolve(reservations)

	s.log.Info("Reservation history retrieved",
		zap.String("username", identity.Username),
		zap.Int("count", len(views)),
	)
	return views, nil
}

func (s *reservationService) resolve(reservations []entity.Reservation) []view.ReservationView {
	return resolveReservations(
		reservations,
		s.store.MoviesSnapshot(),
		s.store.RoomsSnapshot(),
		s.store.CinemasSnapshot(),
	)
}
