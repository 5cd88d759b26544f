package view

import (
	"cinema-client/internal/data/entity"
)

// UnknownLabel is what display code shows for a lookup that found no match.
const UnknownLabel = "Unknown"

// ReservationView is a reservation joined with the display fields the tables
// need: movie, room and cinema resolved through the cached collections. Each
// lookup resolves independently; a missing room never hides the rest of the
// row, let alone the rest of the batch.
type ReservationView struct {
	Reservation entity.Reservation
	Movie       Lookup[entity.Movie]
	Room        Lookup[entity.Room]
	Cinema      Lookup[entity.Cinema]
}

func (v ReservationView) MovieName() string {
	if m, ok := v.Movie.Value(); ok {
		return m.Name
	}
	return UnknownLabel
}

func (v ReservationView) RoomName() string {
	if r, ok := v.Room.Value(); ok {
		return r.Name
	}
	return UnknownLabel
}

func (v ReservationView) CinemaName() string {
	if c, ok := v.Cinema.Value(); ok {
		return c.Name
	}
	return UnknownLabel
}
