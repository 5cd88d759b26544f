// Package remotetest is an in-memory stand-in for the cinema backend, used
// by tests. It serves the same resource paths the real service exposes,
// including the nested room/sceance routes and the bearer-credential checks.
package remotetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"time"

	"cinema-client/internal/data/entity"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Server struct {
	mu           sync.Mutex
	movies       []entity.Movie
	cinemas      []entity.Cinema
	rooms        []entity.Room
	sessions     map[string][]entity.Session // keyed by cinema uid
	reservations []entity.Reservation
	identities   map[string]entity.Identity // keyed by bearer token

	// When set, reservation creation fails with this status and message.
	reservationFailure int
	failureMessage     string

	// One-shot gate on the next movie listing; see HoldNextMovieList.
	movieListHold *listHold

	httpSrv *httptest.Server
}

func NewServer() *Server {
	s := &Server{
		sessions:   make(map[string][]entity.Session),
		identities: make(map[string]entity.Identity),
	}
	s.httpSrv = httptest.NewServer(s.routes())
	return s
}

func (s *Server) URL() string { return s.httpSrv.URL }
func (s *Server) Close()      { s.httpSrv.Close() }

// ---------- seeding ----------

func (s *Server) AddMovie(m entity.Movie) entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	s.movies = append(s.movies, m)
	return m
}

func (s *Server) AddCinema(c entity.Cinema) entity.Cinema {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.cinemas = append(s.cinemas, c)
	return c
}

func (s *Server) AddRoom(r entity.Room) entity.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.rooms = append(s.rooms, r)
	return r
}

// AddSession attaches a session to one cinema's listing. The same session id
// may deliberately be attached to several cinemas to simulate a backend that
// answers redundantly across scopes.
func (s *Server) AddSession(cinemaID string, session entity.Session) entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	session.CinemaID = "" // the backend never sends the owning cinema
	s.sessions[cinemaID] = append(s.sessions[cinemaID], session)
	return session
}

func (s *Server) AddReservation(r entity.Reservation) entity.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.reservations = append(s.reservations, r)
	return r
}

func (s *Server) AddIdentity(token string, identity entity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[token] = identity
}

// FailReservationCreate makes every subsequent reservation creation fail.
// Pass status 0 to restore normal behavior.
func (s *Server) FailReservationCreate(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservationFailure = status
	s.failureMessage = message
}

type listHold struct {
	arrived chan struct{}
	release chan struct{}
}

// HoldNextMovieList makes the next movie listing capture the collection,
// signal on arrived, then wait for release before responding. It lets a test
// stage two overlapping refreshes whose completion order differs from their
// issue order.
func (s *Server) HoldNextMovieList() (arrived <-chan struct{}, release func()) {
	hold := &listHold{
		arrived: make(chan struct{}),
		release: make(chan struct{}),
	}
	s.mu.Lock()
	s.movieListHold = hold
	s.mu.Unlock()
	return hold.arrived, func() { close(hold.release) }
}

// Reservations returns a copy of the stored reservations.
func (s *Server) Reservations() []entity.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reservations)
}

// ---------- routing ----------

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/movies", s.listMovies)
	r.Get("/movies/{uid}", s.getMovie)
	r.With(s.requireAuth).Post("/movies", s.createMovie)
	r.With(s.requireAuth).Put("/movies/{uid}", s.updateMovie)
	r.With(s.requireAuth).Delete("/movies/{uid}", s.deleteMovie)

	r.Get("/cinema", s.listCinemas)
	r.Get("/cinema/{cinemaUid}", s.getCinema)
	r.With(s.requireAuth).Post("/cinema", s.createCinema)
	r.With(s.requireAuth).Put("/cinema/{cinemaUid}", s.updateCinema)
	r.With(s.requireAuth).Delete("/cinema/{cinemaUid}", s.deleteCinema)

	r.Get("/cinema/{cinemaUid}/rooms", s.listRooms)
	r.Get("/cinema/{cinemaUid}/rooms/{roomUid}", s.getRoom)
	r.With(s.requireAuth).Post("/cinema/{cinemaUid}/rooms", s.createRoom)
	r.With(s.requireAuth).Put("/cinema/{cinemaUid}/rooms/{roomUid}", s.updateRoom)
	r.With(s.requireAuth).Delete("/cinema/{cinemaUid}/rooms/{roomUid}", s.deleteRoom)

	r.Get("/cinema/{cinemaUid}/rooms/{roomUid}/sceances", s.listSessions)
	r.With(s.requireAuth).Post("/cinema/{cinemaUid}/rooms/{roomUid}/sceances", s.createSession)
	r.With(s.requireAuth).Put("/cinema/{cinemaUid}/rooms/{roomUid}/sceances/{uid}", s.updateSession)
	r.With(s.requireAuth).Delete("/cinema/{cinemaUid}/rooms/{roomUid}/sceances/{uid}", s.deleteSession)

	r.With(s.requireAuth).Post("/movie/{movieUid}/reservations", s.createReservation)
	r.With(s.requireAuth).Get("/movie/{movieUid}/reservations", s.listReservationsByMovie)
	r.With(s.requireAuth).Get("/reservations/username/{username}", s.listReservationsByUsername)
	r.With(s.requireAuth).Post("/reservations/{uid}/confirm", s.confirmReservation)

	r.With(s.requireAuth).Post("/auth/verify", s.verify)

	return r
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := s.identityFor(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid or missing credential"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) identityFor(r *http.Request) (entity.Identity, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return entity.Identity{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	identity, ok := s.identities[token]
	return identity, ok
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
}

// ---------- movies ----------

func (s *Server) listMovies(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	movies := slices.Clone(s.movies)
	hold := s.movieListHold
	s.movieListHold = nil
	s.mu.Unlock()

	if hold != nil {
		close(hold.arrived)
		<-hold.release
	}

	writeJSON(w, http.StatusOK, movies)
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.ID == uid {
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	notFound(w)
}

func (s *Server) createMovie(w http.ResponseWriter, r *http.Request) {
	var m entity.Movie
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	s.mu.Lock()
	s.movies = append(s.movies, m)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) updateMovie(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	var m entity.Movie
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].ID == uid {
			m.ID = uid
			m.CreatedAt = s.movies[i].CreatedAt
			m.UpdatedAt = time.Now()
			s.movies[i] = m
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	notFound(w)
}

func (s *Server) deleteMovie(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	s.mu.Lock()
	s.movies = slices.DeleteFunc(s.movies, func(m entity.Movie) bool { return m.ID == uid })
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// ---------- cinemas ----------

func (s *Server) listCinemas(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	cinemas := slices.Clone(s.cinemas)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, cinemas)
}

func (s *Server) getCinema(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "cinemaUid")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cinemas {
		if c.ID == uid {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	notFound(w)
}

func (s *Server) createCinema(w http.ResponseWriter, r *http.Request) {
	var c entity.Cinema
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	c.ID = uuid.NewString()

	s.mu.Lock()
	s.cinemas = append(s.cinemas, c)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) updateCinema(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "cinemaUid")
	var c entity.Cinema
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cinemas {
		if s.cinemas[i].ID == uid {
			c.ID = uid
			s.cinemas[i] = c
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	notFound(w)
}

func (s *Server) deleteCinema(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "cinemaUid")
	s.mu.Lock()
	s.cinemas = slices.DeleteFunc(s.cinemas, func(c entity.Cinema) bool { return c.ID == uid })
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// ---------- rooms ----------

func (s *Server) listRooms(w http.ResponseWriter, r *http.Request) {
	cinemaUid := chi.URLParam(r, "cinemaUid")
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := make([]entity.Room, 0)
	for _, room := range s.rooms {
		if room.CinemaID == cinemaUid {
			rooms = append(rooms, room)
		}
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) getRoom(w http.ResponseWriter, r *http.Request) {
	roomUid := chi.URLParam(r, "roomUid")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.ID == roomUid {
			writeJSON(w, http.StatusOK, room)
			return
		}
	}
	notFound(w)
}

func (s *Server) createRoom(w http.ResponseWriter, r *http.Request) {
	cinemaUid := chi.URLParam(r, "cinemaUid")
	var room entity.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	room.ID = uuid.NewString()
	room.CinemaID = cinemaUid

	s.mu.Lock()
	s.rooms = append(s.rooms, room)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, room)
}

func (s *Server) updateRoom(w http.ResponseWriter, r *http.Request) {
	roomUid := chi.URLParam(r, "roomUid")
	var room entity.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == roomUid {
			room.ID = roomUid
			room.CinemaID = s.rooms[i].CinemaID
			s.rooms[i] = room
			writeJSON(w, http.StatusOK, room)
			return
		}
	}
	notFound(w)
}

func (s *Server) deleteRoom(w http.ResponseWriter, r *http.Request) {
	roomUid := chi.URLParam(r, "roomUid")
	s.mu.Lock()
	s.rooms = slices.DeleteFunc(s.rooms, func(room entity.Room) bool { return room.ID == roomUid })
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// ---------- sessions ----------

// listSessions ignores the room segment, wildcard or not: the listing covers
// every session of the cinema, which is what the real backend does for the
// :roomUid wildcard the client sends.
func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	cinemaUid := chi.URLParam(r, "cinemaUid")
	s.mu.Lock()
	sessions := slices.Clone(s.sessions[cinemaUid])
	s.mu.Unlock()
	if sessions == nil {
		sessions = []entity.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	cinemaUid := chi.URLParam(r, "cinemaUid")
	var session entity.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	session.ID = uuid.NewString()
	session.CinemaID = ""

	s.mu.Lock()
	s.sessions[cinemaUid] = append(s.sessions[cinemaUid], session)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) updateSession(w http.ResponseWriter, r *http.Request) {
	cinemaUid := chi.URLParam(r, "cinemaUid")
	uid := chi.URLParam(r, "uid")
	var session entity.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.sessions[cinemaUid]
	for i := range list {
		if list[i].ID == uid {
			session.ID = uid
			session.CinemaID = ""
			list[i] = session
			writeJSON(w, http.StatusOK, session)
			return
		}
	}
	notFound(w)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	cinemaUid := chi.URLParam(r, "cinemaUid")
	uid := chi.URLParam(r, "uid")
	s.mu.Lock()
	s.sessions[cinemaUid] = slices.DeleteFunc(s.sessions[cinemaUid], func(x entity.Session) bool { return x.ID == uid })
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// ---------- reservations ----------

func (s *Server) createReservation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	failure, message := s.reservationFailure, s.failureMessage
	s.mu.Unlock()
	if failure != 0 {
		writeJSON(w, failure, map[string]string{"message": message})
		return
	}

	var res entity.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	if res.NbSeats < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "nbSeats must be at least 1"})
		return
	}
	res.ID = uuid.NewString()
	res.MovieID = chi.URLParam(r, "movieUid")

	s.mu.Lock()
	s.reservations = append(s.reservations, res)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) listReservationsByMovie(w http.ResponseWriter, r *http.Request) {
	movieUid := chi.URLParam(r, "movieUid")
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]entity.Reservation, 0)
	for _, res := range s.reservations {
		if res.MovieID == movieUid {
			list = append(list, res)
		}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) listReservationsByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]entity.Reservation, 0)
	for _, res := range s.reservations {
		if res.Username == username {
			list = append(list, res)
		}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) confirmReservation(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == uid {
			// Idempotent: confirming twice is indistinguishable from once.
			s.reservations[i].Status = entity.ReservationStatusConfirmed
			writeJSON(w, http.StatusOK, s.reservations[i])
			return
		}
	}
	notFound(w)
}

// ---------- auth ----------

func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	identity, _ := s.identityFor(r)
	writeJSON(w, http.StatusOK, identity)
}
