package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMovieRequest() *request.MovieRequest {
	return &request.MovieRequest{
		Name:        "Dune",
		Description: "Spice and sand",
		Rate:        5,
		Duration:    155,
	}
}

func TestCreateMovieValidation(t *testing.T) {
	env := newTestEnv(t)
	env.srv.AddIdentity(testToken, entity.Identity{Username: "admin", Role: "admin"})
	ctx := context.Background()

	cases := map[string]func(*request.MovieRequest){
		"missing name":       func(r *request.MovieRequest) { r.Name = "" },
		"rate above five":    func(r *request.MovieRequest) { r.Rate = 6 },
		"duration too long":  func(r *request.MovieRequest) { r.Duration = 241 },
		"picture url broken": func(r *request.MovieRequest) { r.PictureURL = "not-a-url" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validMovieRequest()
			mutate(req)
			_, err := env.svc.Admin.CreateMovie(ctx, req)
			assert.True(t, IsValidation(err))
		})
	}

	// None of the rejected commands reached the backend.
	assert.Empty(t, env.store.MoviesSnapshot())
}

func TestCreateMovieMergesOnSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.srv.AddIdentity(testToken, entity.Identity{Username: "admin", Role: "admin"})
	ctx := context.Background()

	created, err := env.svc.Admin.CreateMovie(ctx, validMovieRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	snap := env.store.MoviesSnapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, created.ID, snap[0].ID)
}

func TestMutationFailureLeavesCacheUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.srv.AddMovie(entity.Movie{Name: "Dune"})
	require.NoError(t, env.svc.Catalog.RefreshMovies(ctx))

	dead := deadService(t, env.store)
	_, err := dead.Admin.CreateMovie(ctx, validMovieRequest())
	require.Error(t, err)
	assert.False(t, IsValidation(err), "the request was valid; the backend was unreachable")
	assert.Len(t, env.store.MoviesSnapshot(), 1, "no optimistic merge on failure")
}

func TestDeleteCinemaCascades(t *testing.T) {
	env := newTestEnv(t)
	env.srv.AddIdentity(testToken, entity.Identity{Username: "admin", Role: "admin"})
	ctx := context.Background()

	doomed := env.srv.AddCinema(entity.Cinema{Name: "Centre"})
	other := env.srv.AddCinema(entity.Cinema{Name: "Nord"})
	env.srv.AddRoom(entity.Room{CinemaID: doomed.ID, Name: "Salle 1", Seats: 80})
	env.srv.AddRoom(entity.Room{CinemaID: doomed.ID, Name: "Salle 2", Seats: 40})
	kept := env.srv.AddRoom(entity.Room{CinemaID: other.ID, Name: "Salle A", Seats: 60})

	require.NoError(t, env.svc.Catalog.RefreshCinemas(ctx))
	require.NoError(t, env.svc.Catalog.RefreshRooms(ctx))
	require.Len(t, env.store.RoomsSnapshot(), 3)

	require.NoError(t, env.svc.Admin.DeleteCinema(ctx, doomed.ID))

	cinemas := env.store.CinemasSnapshot()
	require.Len(t, cinemas, 1)
	assert.Equal(t, other.ID, cinemas[0].ID)

	rooms := env.store.RoomsSnapshot()
	require.Len(t, rooms, 1, "rooms of the deleted cinema go with it")
	assert.Equal(t, kept.ID, rooms[0].ID)
}

func TestDeleteSessionIssuesOneDeletePerRoom(t *testing.T) {
	env := newTestEnv(t)
	env.srv.AddIdentity(testToken, entity.Identity{Username: "admin", Role: "admin"})
	ctx := context.Background()

	cinema := env.srv.AddCinema(entity.Cinema{Name: "Centre"})
	session := env.srv.AddSession(cinema.ID, entity.Session{
		MovieID: "m1",
		Date:    time.Now().Add(time.Hour),
		RoomIDs: []string{"r1", "r2"},
	})

	require.NoError(t, env.svc.Catalog.RefreshCinemas(ctx))
	require.NoError(t, env.svc.Catalog.RefreshSessions(ctx))

	require.NoError(t, env.svc.Admin.DeleteSession(ctx, session.ID))
	assert.Empty(t, env.store.SessionsSnapshot())
}

func TestDeleteSessionRequiresCachedSession(t *testing.T) {
	env := newTestEnv(t)
	env.srv.AddIdentity(testToken, entity.Identity{Username: "admin", Role: "admin"})

	err := env.svc.Admin.DeleteSession(context.Background(), "never-fetched")
	assert.True(t, IsValidation(err), "the delete route needs the cached cinema and rooms")
}

func TestCreateSessionAttachesCinema(t *testing.T) {
	env := newTestEnv(t)
	env.srv.AddIdentity(testToken, entity.Identity{Username: "admin", Role: "admin"})
	ctx := context.Background()

	cinema := env.srv.AddCinema(entity.Cinema{Name: "Centre"})

	created, err := env.svc.Admin.CreateSession(ctx, &request.SessionRequest{
		MovieID:  "m1",
		CinemaID: cinema.ID,
		Date:     time.Now().Add(time.Hour),
		RoomIDs:  []string{"r1"},
	})
	require.NoError(t, err)
	assert.Equal(t, cinema.ID, created.CinemaID, "the owning cinema is attached client-side")

	snap := env.store.SessionsSnapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, created.ID, snap[0].ID)
}

func TestCreateRoomValidation(t *testing.T) {
	env := newTestEnv(t)
	env.srv.AddIdentity(testToken, entity.Identity{Username: "admin", Role: "admin"})
	ctx := context.Background()

	_, err := env.svc.Admin.CreateRoom(ctx, &request.RoomRequest{
		CinemaID: "c1",
		Name:     "Salle 1",
		Seats:    0,
	})
	assert.True(t, IsValidation(err), "a room needs at least one seat")
}
