package remote

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"

	"go.uber.org/zap"
)

// allRoomsSegment is the literal wildcard the backend accepts in place of a
// room uid; it makes the sceances listing return every session of the cinema.
const allRoomsSegment = ":roomUid"

type SessionAPI interface {
	ListByCinema(ctx context.Context, cinemaID string) ([]entity.Session, error)
	Create(ctx context.Context, cinemaID, roomID string, session *entity.Session) (*entity.Session, error)
	Update(ctx context.Context, cinemaID, roomID string, session *entity.Session) (*entity.Session, error)
	Delete(ctx context.Context, cinemaID, roomID, sessionID string) error
}

type sessionAPI struct {
	c   *Client
	log *zap.Logger
}

func NewSessionAPI(c *Client, log *zap.Logger) SessionAPI {
	return &sessionAPI{
		c:   c,
		log: log.With(zap.String("api", "session")),
	}
}

func sceancesPath(cinemaID, roomID string) string {
	return "/cinema/" + cinemaID + "/rooms/" + roomID + "/sceances"
}

func (a *sessionAPI) ListByCinema(ctx context.Context, cinemaID string) ([]entity.Session, error) {
	var sessions []entity.Session
	if err := a.c.get(ctx, sceancesPath(cinemaID, allRoomsSegment), &sessions); err != nil {
		return nil, fmt.Errorf("list sessions of cinema %s: %w", cinemaID, err)
	}
	return sessions, nil
}

func (a *sessionAPI) Create(ctx context.Context, cinemaID, roomID string, session *entity.Session) (*entity.Session, error) {
	var created entity.Session
	if err := a.c.post(ctx, sceancesPath(cinemaID, roomID), session, &created); err != nil {
		return nil, fmt.Errorf("create session in cinema %s: %w", cinemaID, err)
	}
	a.log.Info("Session created",
		zap.String("uid", created.ID),
		zap.String("cinema_uid", cinemaID),
		zap.String("movie_uid", created.MovieID),
	)
	return &created, nil
}

func (a *sessionAPI) Update(ctx context.Context, cinemaID, roomID string, session *entity.Session) (*entity.Session, error) {
	var updated entity.Session
	if err := a.c.put(ctx, sceancesPath(cinemaID, roomID)+"/"+session.ID, session, &updated); err != nil {
		return nil, fmt.Errorf("update session %s: %w", session.ID, err)
	}
	return &updated, nil
}

func (a *sessionAPI) Delete(ctx context.Context, cinemaID, roomID, sessionID string) error {
	if err := a.c.delete(ctx, sceancesPath(cinemaID, roomID)+"/"+sessionID); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	a.log.Info("Session deleted", zap.String("uid", sessionID), zap.String("cinema_uid", cinemaID))
	return nil
}
