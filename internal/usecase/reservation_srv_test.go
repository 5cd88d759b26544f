package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryResolvesForDisplay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.srv.AddIdentity(testToken, entity.Identity{Username: "alice"})
	movie := env.srv.AddMovie(entity.Movie{Name: "Dune"})
	cinema := env.srv.AddCinema(entity.Cinema{Name: "Centre"})
	room := env.srv.AddRoom(entity.Room{CinemaID: cinema.ID, Name: "Salle 1", Seats: 80})

	require.NoError(t, env.svc.Catalog.RefreshAll(ctx))

	env.srv.AddReservation(entity.Reservation{
		MovieID: movie.ID, SessionID: "s1", RoomID: room.ID,
		NbSeats: 2, Rank: 1, Status: entity.ReservationStatusOpen,
		ExpiresAt: time.Now().Add(time.Hour), Username: "alice",
	})
	// A reservation against data the cache no longer has.
	env.srv.AddReservation(entity.Reservation{
		MovieID: "gone-movie", SessionID: "s2", RoomID: "gone-room",
		NbSeats: 1, Rank: 1, Status: entity.ReservationStatusOpen, Username: "alice",
	})
	// Someone else's reservation never shows up in alice's history.
	env.srv.AddReservation(entity.Reservation{
		MovieID: movie.ID, SessionID: "s1", RoomID: room.ID,
		NbSeats: 4, Rank: 1, Status: entity.ReservationStatusOpen, Username: "bob",
	})

	views, err := env.svc.Reservation.History(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	resolved := views[0]
	assert.Equal(t, "Dune", resolved.MovieName())
	assert.Equal(t, "Salle 1", resolved.RoomName())
	assert.Equal(t, "Centre", resolved.CinemaName())

	orphan := views[1]
	assert.Equal(t, view.UnknownLabel, orphan.MovieName())
	assert.Equal(t, view.UnknownLabel, orphan.RoomName())
	assert.Equal(t, view.UnknownLabel, orphan.CinemaName())
	assert.Equal(t, 1, orphan.Reservation.NbSeats, "unresolved lookups never hide the reservation itself")
}

func TestListByMovie(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.srv.AddIdentity(testToken, entity.Identity{Username: "admin", Role: "admin"})
	movie := env.srv.AddMovie(entity.Movie{Name: "Dune"})
	other := env.srv.AddMovie(entity.Movie{Name: "Arrival"})
	require.NoError(t, env.svc.Catalog.RefreshMovies(ctx))

	env.srv.AddReservation(entity.Reservation{MovieID: movie.ID, NbSeats: 2, Username: "alice"})
	env.srv.AddReservation(entity.Reservation{MovieID: other.ID, NbSeats: 1, Username: "alice"})

	views, err := env.svc.Reservation.ListByMovie(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Dune", views[0].MovieName())

	// The listing replaced the cached reservation collection.
	assert.Len(t, env.store.ReservationsSnapshot(), 1)
}

func TestHistoryRequiresCredential(t *testing.T) {
	env := newTestEnv(t)

	// No identity registered for the test token.
	_, err := env.svc.Reservation.History(context.Background())
	require.Error(t, err)
}
