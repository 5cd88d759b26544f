package remote

import (
	"go.uber.org/zap"
)

// Remote groups the typed resource APIs the rest of the client is built on.
type Remote struct {
	Movie       MovieAPI
	Cinema      CinemaAPI
	Room        RoomAPI
	Session     SessionAPI
	Reservation ReservationAPI
	Auth        AuthAPI
}

func NewRemote(c *Client, log *zap.Logger) *Remote {
	return &Remote{
		Movie:       NewMovieAPI(c, log),
		Cinema:      NewCinemaAPI(c, log),
		Room:        NewRoomAPI(c, log),
		Session:     NewSessionAPI(c, log),
		Reservation: NewReservationAPI(c, log),
		Auth:        NewAuthAPI(c, log),
	}
}
