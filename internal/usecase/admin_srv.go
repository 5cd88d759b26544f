package usecase

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/data/remote"
	"cinema-client/internal/data/repository"
	"cinema-client/internal/dto/request"

	"go.uber.org/zap"
)

// AdminService issues the admin mutation commands. Every command validates
// locally first, and the cached collection is only touched after the server
// accepted the change, never optimistically.
type AdminService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error)
	UpdateMovie(ctx context.Context, id string, req *request.MovieRequest) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, id string) error

	CreateCinema(ctx context.Context, req *request.CinemaRequest) (*entity.Cinema, error)
	UpdateCinema(ctx context.Context, id string, req *request.CinemaRequest) (*entity.Cinema, error)
	DeleteCinema(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, req *request.RoomRequest) (*entity.Room, error)
	UpdateRoom(ctx context.Context, id string, req *request.RoomRequest) (*entity.Room, error)
	DeleteRoom(ctx context.Context, cinemaID, roomID string) error

	CreateSession(ctx context.Context, req *request.SessionRequest) (*entity.Session, error)
	UpdateSession(ctx context.Context, id string, req *request.SessionRequest) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type adminService struct {
	remote *remote.Remote
	store  *repository.Store
	log    *zap.Logger
}

func NewAdminService(r *remote.Remote, store *repository.Store, log *zap.Logger) AdminService {
	return &adminService{
		remote: r,
		store:  store,
		log:    log.With(zap.String("service", "admin")),
	}
}

// ---------- movies ----------

func (s *adminService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	created, err := s.remote.Movie.Create(ctx, &entity.Movie{
		Name:        req.Name,
		Description: req.Description,
		Rate:        req.Rate,
		Duration:    req.Duration,
		PictureURL:  req.PictureURL,
	})
	if err != nil {
		return nil, err
	}

	s.store.UpsertMovie(*created)
	return created, nil
}

func (s *adminService) UpdateMovie(ctx context.Context, id string, req *request.MovieRequest) (*entity.Movie, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	updated, err := s.remote.Movie.Update(ctx, &entity.Movie{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Rate:        req.Rate,
		Duration:    req.Duration,
		PictureURL:  req.PictureURL,
	})
	if err != nil {
		return nil, err
	}

	s.store.UpsertMovie(*updated)
	return updated, nil
}

func (s *adminService) DeleteMovie(ctx context.Context, id string) error {
	if err := s.remote.Movie.Delete(ctx, id); err != nil {
		return err
	}
	s.store.RemoveMovie(id)
	return nil
}

// ---------- cinemas ----------

func (s *adminService) CreateCinema(ctx context.Context, req *request.CinemaRequest) (*entity.Cinema, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	created, err := s.remote.Cinema.Create(ctx, &entity.Cinema{Name: req.Name})
	if err != nil {
		return nil, err
	}

	s.store.UpsertCinema(*created)
	return created, nil
}

func (s *adminService) UpdateCinema(ctx context.Context, id string, req *request.CinemaRequest) (*entity.Cinema, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	updated, err := s.remote.Cinema.Update(ctx, &entity.Cinema{ID: id, Name: req.Name})
	if err != nil {
		return nil, err
	}

	s.store.UpsertCinema(*updated)
	return updated, nil
}

// DeleteCinema deletes the cinema's rooms first, then the cinema itself;
// the backend does not cascade. A room delete that fails aborts the whole
// command with the cinema still present.
func (s *adminService) DeleteCinema(ctx context.Context, id string) error {
	for _, room := range s.store.RoomsSnapshot() {
		if room.CinemaID != id {
			continue
		}
		if err := s.remote.Room.Delete(ctx, id, room.ID); err != nil {
			return fmt.Errorf("delete attached room %s: %w", room.ID, err)
		}
		s.store.RemoveRoom(room.ID)
	}

	if err := s.remote.Cinema.Delete(ctx, id); err != nil {
		return err
	}

	s.store.RemoveCinema(id)
	s.store.RemoveRoomsOfCinema(id)
	s.log.Info("Cinema deleted with attached rooms", zap.String("uid", id))
	return nil
}

// ---------- rooms ----------

func (s *adminService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*entity.Room, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	created, err := s.remote.Room.Create(ctx, req.CinemaID, &entity.Room{
		CinemaID: req.CinemaID,
		Name:     req.Name,
		Seats:    req.Seats,
	})
	if err != nil {
		return nil, err
	}

	s.store.UpsertRoom(*created)
	return created, nil
}

func (s *adminService) UpdateRoom(ctx context.Context, id string, req *request.RoomRequest) (*entity.Room, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	updated, err := s.remote.Room.Update(ctx, req.CinemaID, &entity.Room{
		ID:       id,
		CinemaID: req.CinemaID,
		Name:     req.Name,
		Seats:    req.Seats,
	})
	if err != nil {
		return nil, err
	}

	s.store.UpsertRoom(*updated)
	return updated, nil
}

func (s *adminService) DeleteRoom(ctx context.Context, cinemaID, roomID string) error {
	if err := s.remote.Room.Delete(ctx, cinemaID, roomID); err != nil {
		return err
	}
	s.store.RemoveRoom(roomID)
	return nil
}

// ---------- sessions ----------

func (s *adminService) CreateSession(ctx context.Context, req *request.SessionRequest) (*entity.Session, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	created, err := s.remote.Session.Create(ctx, req.CinemaID, req.RoomIDs[0], &entity.Session{
		MovieID: req.MovieID,
		Date:    req.Date,
		RoomIDs: req.RoomIDs,
	})
	if err != nil {
		return nil, err
	}

	created.CinemaID = req.CinemaID
	s.store.UpsertSession(*created)
	return created, nil
}

func (s *adminService) UpdateSession(ctx context.Context, id string, req *request.SessionRequest) (*entity.Session, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	updated, err := s.remote.Session.Update(ctx, req.CinemaID, req.RoomIDs[0], &entity.Session{
		ID:      id,
		MovieID: req.MovieID,
		Date:    req.Date,
		RoomIDs: req.RoomIDs,
	})
	if err != nil {
		return nil, err
	}

	updated.CinemaID = req.CinemaID
	s.store.UpsertSession(*updated)
	return updated, nil
}

// DeleteSession issues one delete per room the session is attached to, the
// way the backend's nested routes require.
func (s *adminService) DeleteSession(ctx context.Context, id string) error {
	var session *entity.Session
	for _, cached := range s.store.SessionsSnapshot() {
		if cached.ID == id {
			session = &cached
			break
		}
	}
	if session == nil {
		return newValidationError("session", fmt.Sprintf("session %s is not in the cached collection", id))
	}

	for _, roomID := range session.RoomIDs {
		if err := s.remote.Session.Delete(ctx, session.CinemaID, roomID, id); err != nil {
			return fmt.Errorf("delete session %s in room %s: %w", id, roomID, err)
		}
	}

	s.store.RemoveSession(id)
	return nil
}
