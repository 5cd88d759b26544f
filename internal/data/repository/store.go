package repository

import (
	"slices"
	"sync"

	"cinema-client/internal/data/entity"

	"go.uber.org/zap"
)

// Store is the client-side cache: one collection per entity kind, swapped
// atomically on refresh. Consumers only ever see snapshots, so derived views
// (filters, sorts, pages) can never mutate the cached collections.
//
// A failed fetch never reaches the store; callers replace a collection only
// with a complete, successfully decoded response. When two refreshes for the
// same kind race, the last one to complete owns the cache: writes happen
// strictly after their fetch finished, with no issue-order bookkeeping.
type Store struct {
	mu           sync.RWMutex
	movies       []entity.Movie
	cinemas      []entity.Cinema
	rooms        []entity.Room
	sessions     []entity.Session
	reservations []entity.Reservation
	log          *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		log: log.With(zap.String("component", "store")),
	}
}

// upsert replaces the element with the same key, or appends when absent.
func upsert[T any](items []T, item T, key func(T) string) []T {
	id := key(item)
	for i := range items {
		if key(items[i]) == id {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

// remove drops every element with the given key.
func remove[T any](items []T, id string, key func(T) string) []T {
	return slices.DeleteFunc(items, func(it T) bool { return key(it) == id })
}

// ---------- movies ----------

func (s *Store) ReplaceMovies(movies []entity.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = movies
	s.log.Debug("Movies replaced", zap.Int("count", len(movies)))
}

func (s *Store) MoviesSnapshot() []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.movies)
}

func (s *Store) UpsertMovie(movie entity.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = upsert(s.movies, movie, func(m entity.Movie) string { return m.ID })
}

func (s *Store) RemoveMovie(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = remove(s.movies, id, func(m entity.Movie) string { return m.ID })
}

// ---------- cinemas ----------

func (s *Store) ReplaceCinemas(cinemas []entity.Cinema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cinemas = cinemas
	s.log.Debug("Cinemas replaced", zap.Int("count", len(cinemas)))
}

func (s *Store) CinemasSnapshot() []entity.Cinema {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cinemas)
}

func (s *Store) UpsertCinema(cinema entity.Cinema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cinemas = upsert(s.cinemas, cinema, func(c entity.Cinema) string { return c.ID })
}

func (s *Store) RemoveCinema(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cinemas = remove(s.cinemas, id, func(c entity.Cinema) string { return c.ID })
}

// ---------- rooms ----------

func (s *Store) ReplaceRooms(rooms []entity.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = rooms
	s.log.Debug("Rooms replaced", zap.Int("count", len(rooms)))
}

func (s *Store) RoomsSnapshot() []entity.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rooms)
}

func (s *Store) UpsertRoom(room entity.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = upsert(s.rooms, room, func(r entity.Room) string { return r.ID })
}

func (s *Store) RemoveRoom(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = remove(s.rooms, id, func(r entity.Room) string { return r.ID })
}

// RemoveRoomsOfCinema drops every room owned by the cinema; used when a
// cinema delete cascades.
func (s *Store) RemoveRoomsOfCinema(cinemaID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = slices.DeleteFunc(s.rooms, func(r entity.Room) bool { return r.CinemaID == cinemaID })
}

// ---------- sessions ----------

func (s *Store) ReplaceSessions(sessions []entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = sessions
	s.log.Debug("Sessions replaced", zap.Int("count", len(sessions)))
}

func (s *Store) SessionsSnapshot() []entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sessions)
}

func (s *Store) UpsertSession(session entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = upsert(s.sessions, session, func(x entity.Session) string { return x.ID })
}

func (s *Store) RemoveSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = remove(s.sessions, id, func(x entity.Session) string { return x.ID })
}

// ---------- reservations ----------

func (s *Store) ReplaceReservations(reservations []entity.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = reservations
	s.log.Debug("Reservations replaced", zap.Int("count", len(reservations)))
}

func (s *Store) ReservationsSnapshot() []entity.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reservations)
}

func (s *Store) UpsertReservation(reservation entity.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = upsert(s.reservations, reservation, func(r entity.Reservation) string { return r.ID })
}
