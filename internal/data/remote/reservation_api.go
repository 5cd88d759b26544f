package remote

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"

	"go.uber.org/zap"
)

type ReservationAPI interface {
	Create(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error)
	ListByMovie(ctx context.Context, movieID string) ([]entity.Reservation, error)
	ListByUsername(ctx context.Context, username string) ([]entity.Reservation, error)
	Confirm(ctx context.Context, reservationID string) (*entity.Reservation, error)
}

type reservationAPI struct {
	c   *Client
	log *zap.Logger
}

func NewReservationAPI(c *Client, log *zap.Logger) ReservationAPI {
	return &reservationAPI{
		c:   c,
		log: log.With(zap.String("api", "reservation")),
	}
}

func (a *reservationAPI) Create(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error) {
	var created entity.Reservation
	path := "/movie/" + reservation.MovieID + "/reservations"
	if err := a.c.post(ctx, path, reservation, &created); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	a.log.Info("Reservation created",
		zap.String("uid", created.ID),
		zap.String("movie_uid", created.MovieID),
		zap.String("session_uid", created.SessionID),
		zap.Int("nb_seats", created.NbSeats),
	)
	return &created, nil
}

func (a *reservationAPI) ListByMovie(ctx context.Context, movieID string) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	if err := a.c.get(ctx, "/movie/"+movieID+"/reservations", &reservations); err != nil {
		return nil, fmt.Errorf("list reservations of movie %s: %w", movieID, err)
	}
	return reservations, nil
}

func (a *reservationAPI) ListByUsername(ctx context.Context, username string) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	if err := a.c.get(ctx, "/reservations/username/"+username, &reservations); err != nil {
		return nil, fmt.Errorf("list reservations of %s: %w", username, err)
	}
	return reservations, nil
}

func (a *reservationAPI) Confirm(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	var confirmed entity.Reservation
	if err := a.c.post(ctx, "/reservations/"+reservationID+"/confirm", nil, &confirmed); err != nil {
		return nil, fmt.Errorf("confirm reservation %s: %w", reservationID, err)
	}
	a.log.Info("Reservation confirmed", zap.String("uid", reservationID))
	return &confirmed, nil
}
