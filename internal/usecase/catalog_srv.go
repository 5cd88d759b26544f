package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/data/remote"
	"cinema-client/internal/data/repository"
	"cinema-client/internal/query"

	"go.uber.org/zap"
)

type MovieSortKey string

const (
	MovieSortByName      MovieSortKey = "name"
	MovieSortByCreatedAt MovieSortKey = "createdAt"
	MovieSortByUpdatedAt MovieSortKey = "updatedAt"
)

type CatalogService interface {
	// Refreshes fetch from the backend and swap the cached collections.
	RefreshMovies(ctx context.Context) error
	RefreshCinemas(ctx context.Context) error
	RefreshRooms(ctx context.Context) error
	RefreshSessions(ctx context.Context) error
	RefreshAll(ctx context.Context) error

	// Reads over the cache.
	OpenSessions(movieID string, now time.Time) []entity.Session
	BrowseMovies(term string, sortKey MovieSortKey, page, perPage int) query.Page[entity.Movie]
	SearchCinemas(term string) []entity.Cinema
	SearchRooms(term string) []entity.Room
	SearchSessionsByMovieName(term string) []entity.Session
}

type catalogService struct {
	remote *remote.Remote
	store  *repository.Store
	log    *zap.Logger
}

func NewCatalogService(r *remote.Remote, store *repository.Store, log *zap.Logger) CatalogService {
	return &catalogService{
		remote: r,
		store:  store,
		log:    log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) RefreshMovies(ctx context.Context) error {
	movies, err := s.remote.Movie.List(ctx)
	if err != nil {
		s.log.Warn("Movie refresh failed, keeping cached collection", zap.Error(err))
		return fmt.Errorf("refresh movies: %w", err)
	}

	s.store.ReplaceMovies(movies)
	s.log.Info("Movies refreshed", zap.Int("count", len(movies)))
	return nil
}

func (s *catalogService) RefreshCinemas(ctx context.Context) error {
	cinemas, err := s.remote.Cinema.List(ctx)
	if err != nil {
		s.log.Warn("Cinema refresh failed, keeping cached collection", zap.Error(err))
		return fmt.Errorf("refresh cinemas: %w", err)
	}

	s.store.ReplaceCinemas(cinemas)
	s.log.Info("Cinemas refreshed", zap.Int("count", len(cinemas)))
	return nil
}

// RefreshRooms fans out one room listing per cached cinema and merges the
// results keyed by room uid.
func (s *catalogService) RefreshRooms(ctx context.Context) error {
	cinemas := s.store.CinemasSnapshot()

	rooms, err := gatherScoped(ctx, cinemas,
		func(ctx context.Context, c entity.Cinema) ([]entity.Room, error) {
			return s.remote.Room.List(ctx, c.ID)
		},
		func(r entity.Room) string { return r.ID },
		func(r *entity.Room, c entity.Cinema) {
			if r.CinemaID == "" {
				r.CinemaID = c.ID
			}
		},
	)
	if err != nil {
		s.log.Warn("Room refresh failed, keeping cached collection", zap.Error(err))
		return fmt.Errorf("refresh rooms: %w", err)
	}

	s.store.ReplaceRooms(rooms)
	s.log.Info("Rooms refreshed", zap.Int("count", len(rooms)), zap.Int("cinemas", len(cinemas)))
	return nil
}

// RefreshSessions builds the global session view the backend cannot serve
// directly: one scoped listing per cinema, each session tagged with its
// owning cinema uid, duplicates across scopes collapsed first-seen-wins.
func (s *catalogService) RefreshSessions(ctx context.Context) error {
	cinemas := s.store.CinemasSnapshot()

	sessions, err := gatherScoped(ctx, cinemas,
		func(ctx context.Context, c entity.Cinema) ([]entity.Session, error) {
			return s.remote.Session.ListByCinema(ctx, c.ID)
		},
		func(x entity.Session) string { return x.ID },
		func(x *entity.Session, c entity.Cinema) {
			x.CinemaID = c.ID
		},
	)
	if err != nil {
		s.log.Warn("Session refresh failed, keeping cached collection", zap.Error(err))
		return fmt.Errorf("refresh sessions: %w", err)
	}

	s.store.ReplaceSessions(sessions)
	s.log.Info("Sessions refreshed", zap.Int("count", len(sessions)), zap.Int("cinemas", len(cinemas)))
	return nil
}

// RefreshAll loads everything in dependency order: cinemas first, since the
// room and session fan-outs are scoped by them.
func (s *catalogService) RefreshAll(ctx context.Context) error {
	if err := s.RefreshMovies(ctx); err != nil {
		return err
	}
	if err := s.RefreshCinemas(ctx); err != nil {
		return err
	}
	if err := s.RefreshRooms(ctx); err != nil {
		return err
	}
	return s.RefreshSessions(ctx)
}

func (s *catalogService) OpenSessions(movieID string, now time.Time) []entity.Session {
	return openSessions(s.store.SessionsSnapshot(), movieID, now)
}

func (s *catalogService) BrowseMovies(term string, sortKey MovieSortKey, page, perPage int) query.Page[entity.Movie] {
	movies := s.store.MoviesSnapshot()
	movies = query.FilterByText(movies, term, func(m entity.Movie) string { return m.Name })

	switch sortKey {
	case MovieSortByCreatedAt:
		movies = query.SortBy(movies, func(a, b entity.Movie) bool { return a.CreatedAt.After(b.CreatedAt) })
	case MovieSortByUpdatedAt:
		movies = query.SortBy(movies, func(a, b entity.Movie) bool { return a.UpdatedAt.After(b.UpdatedAt) })
	default:
		movies = query.SortBy(movies, func(a, b entity.Movie) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	}

	return query.Paginate(movies, perPage, page)
}

func (s *catalogService) SearchCinemas(term string) []entity.Cinema {
	return query.FilterByText(s.store.CinemasSnapshot(), term, func(c entity.Cinema) string { return c.Name })
}

func (s *catalogService) SearchRooms(term string) []entity.Room {
	return query.FilterByText(s.store.RoomsSnapshot(), term, func(r entity.Room) string { return r.Name })
}

// SearchSessionsByMovieName filters sessions by the name of the movie they
// show, the way the session table search works.
func (s *catalogService) SearchSessionsByMovieName(term string) []entity.Session {
	movies := s.store.MoviesSnapshot()
	nameByID := make(map[string]string, len(movies))
	for _, m := range movies {
		nameByID[m.ID] = m.Name
	}

	return query.FilterByText(s.store.SessionsSnapshot(), term, func(x entity.Session) string {
		return nameByID[x.MovieID]
	})
}
