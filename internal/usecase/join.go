package usecase

import (
	"context"
	"time"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/view"

	"golang.org/x/sync/errgroup"
)

// gatherScoped is the scatter-gather operator behind every "global read over
// a scoped resource". The backend only exposes rooms and sessions per cinema,
// so a global view means one fetch per scope; the fetches run concurrently,
// but the merge folds the results in scope order so the outcome never depends
// on network completion order. Records are deduplicated by key, first seen
// wins: the same record reachable through two scopes must survive exactly
// once, and with the fields attached by the scope that saw it first.
//
// One failed fetch fails the whole gather, so a partial fan-out can never be
// mistaken for a complete collection.
func gatherScoped[S, T any](
	ctx context.Context,
	scopes []S,
	fetch func(ctx context.Context, scope S) ([]T, error),
	key func(T) string,
	tag func(item *T, scope S),
) ([]T, error) {
	results := make([][]T, len(scopes))

	g, ctx := errgroup.WithContext(ctx)
	for i, scope := range scopes {
		g.Go(func() error {
			items, err := fetch(ctx, scope)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var merged []T
	for i, scope := range scopes {
		for _, item := range results[i] {
			if _, dup := seen[key(item)]; dup {
				continue
			}
			seen[key(item)] = struct{}{}
			if tag != nil {
				tag(&item, scope)
			}
			merged = append(merged, item)
		}
	}

	return merged, nil
}

// openSessions returns the sessions a user can still book for the movie:
// room set non-empty, movie matches, showing strictly after now. Evaluated
// fresh on every call; "upcoming" decays as the clock advances.
func openSessions(sessions []entity.Session, movieID string, now time.Time) []entity.Session {
	var open []entity.Session
	for _, s := range sessions {
		if s.MovieID == movieID && len(s.RoomIDs) > 0 && s.Date.After(now) {
			open = append(open, s)
		}
	}
	return open
}

// resolveReservations joins reservations with the cached movie, room and
// cinema collections. Lookups that find nothing stay Unresolved; the rest of
// the batch renders regardless.
func resolveReservations(
	reservations []entity.Reservation,
	movies []entity.Movie,
	rooms []entity.Room,
	cinemas []entity.Cinema,
) []view.ReservationView {
	movieByID := make(map[string]entity.Movie, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m
	}
	roomByID := make(map[string]entity.Room, len(rooms))
	for _, r := range rooms {
		roomByID[r.ID] = r
	}
	cinemaByID := make(map[string]entity.Cinema, len(cinemas))
	for _, c := range cinemas {
		cinemaByID[c.ID] = c
	}

	views := make([]view.ReservationView, len(reservations))
	for i, res := range reservations {
		v := view.ReservationView{
			Reservation: res,
			Movie:       view.Unresolved[entity.Movie](),
			Room:        view.Unresolved[entity.Room](),
			Cinema:      view.Unresolved[entity.Cinema](),
		}
		if m, ok := movieByID[res.MovieID]; ok {
			v.Movie = view.Resolved(m)
		}
		if r, ok := roomByID[res.RoomID]; ok {
			v.Room = view.Resolved(r)
			if c, ok := cinemaByID[r.CinemaID]; ok {
				v.Cinema = view.Resolved(c)
			}
		}
		views[i] = v
	}

	return views
}
