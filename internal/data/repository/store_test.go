package repository

import (
	"fmt"
	"sync"
	"testing"

	"cinema-client/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore() *Store {
	return NewStore(zap.NewNop())
}

func TestSnapshotIsolation(t *testing.T) {
	store := newTestStore()
	store.ReplaceMovies([]entity.Movie{{ID: "m1", Name: "Dune"}})

	snap := store.MoviesSnapshot()
	snap[0].Name = "mutated"

	fresh := store.MoviesSnapshot()
	require.Len(t, fresh, 1)
	assert.Equal(t, "Dune", fresh[0].Name, "mutating a snapshot must not reach the cache")
}

func TestReplaceSwapsWholeCollection(t *testing.T) {
	store := newTestStore()
	store.ReplaceCinemas([]entity.Cinema{{ID: "c1"}, {ID: "c2"}})
	store.ReplaceCinemas([]entity.Cinema{{ID: "c3"}})

	snap := store.CinemasSnapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "c3", snap[0].ID)
}

func TestUpsert(t *testing.T) {
	store := newTestStore()
	store.ReplaceMovies([]entity.Movie{{ID: "m1", Name: "Dune"}, {ID: "m2", Name: "Arrival"}})

	t.Run("existing id is replaced in place", func(t *testing.T) {
		store.UpsertMovie(entity.Movie{ID: "m1", Name: "Dune: Part Two"})
		snap := store.MoviesSnapshot()
		require.Len(t, snap, 2)
		assert.Equal(t, "Dune: Part Two", snap[0].Name)
	})

	t.Run("new id is appended", func(t *testing.T) {
		store.UpsertMovie(entity.Movie{ID: "m3", Name: "Blade Runner"})
		assert.Len(t, store.MoviesSnapshot(), 3)
	})
}

func TestRemove(t *testing.T) {
	store := newTestStore()
	store.ReplaceSessions([]entity.Session{{ID: "s1"}, {ID: "s2"}})

	store.RemoveSession("s1")
	snap := store.SessionsSnapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "s2", snap[0].ID)

	// Removing an absent id is a no-op.
	store.RemoveSession("nope")
	assert.Len(t, store.SessionsSnapshot(), 1)
}

func TestRemoveRoomsOfCinema(t *testing.T) {
	store := newTestStore()
	store.ReplaceRooms([]entity.Room{
		{ID: "r1", CinemaID: "c1"},
		{ID: "r2", CinemaID: "c1"},
		{ID: "r3", CinemaID: "c2"},
	})

	store.RemoveRoomsOfCinema("c1")
	snap := store.RoomsSnapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "r3", snap[0].ID)
}

// Concurrent refreshes and readers must never corrupt the cache; whichever
// replace completes last owns it. Run with -race.
func TestConcurrentReplaceAndSnapshot(t *testing.T) {
	store := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				store.ReplaceMovies([]entity.Movie{{ID: fmt.Sprintf("m%d-%d", i, j)}})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				snap := store.MoviesSnapshot()
				// Every observed state is a complete replacement.
				assert.LessOrEqual(t, len(snap), 1)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, store.MoviesSnapshot(), 1)
}
