package remote

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"

	"go.uber.org/zap"
)

type RoomAPI interface {
	List(ctx context.Context, cinemaID string) ([]entity.Room, error)
	Get(ctx context.Context, cinemaID, roomID string) (*entity.Room, error)
	Create(ctx context.Context, cinemaID string, room *entity.Room) (*entity.Room, error)
	Update(ctx context.Context, cinemaID string, room *entity.Room) (*entity.Room, error)
	Delete(ctx context.Context, cinemaID, roomID string) error
}

type roomAPI struct {
	c   *Client
	log *zap.Logger
}

func NewRoomAPI(c *Client, log *zap.Logger) RoomAPI {
	return &roomAPI{
		c:   c,
		log: log.With(zap.String("api", "room")),
	}
}

func roomsPath(cinemaID string) string {
	return "/cinema/" + cinemaID + "/rooms"
}

func (a *roomAPI) List(ctx context.Context, cinemaID string) ([]entity.Room, error) {
	var rooms []entity.Room
	if err := a.c.get(ctx, roomsPath(cinemaID), &rooms); err != nil {
		return nil, fmt.Errorf("list rooms of cinema %s: %w", cinemaID, err)
	}
	return rooms, nil
}

func (a *roomAPI) Get(ctx context.Context, cinemaID, roomID string) (*entity.Room, error) {
	var room entity.Room
	if err := a.c.get(ctx, roomsPath(cinemaID)+"/"+roomID, &room); err != nil {
		return nil, fmt.Errorf("get room %s: %w", roomID, err)
	}
	return &room, nil
}

func (a *roomAPI) Create(ctx context.Context, cinemaID string, room *entity.Room) (*entity.Room, error) {
	var created entity.Room
	if err := a.c.post(ctx, roomsPath(cinemaID), room, &created); err != nil {
		return nil, fmt.Errorf("create room in cinema %s: %w", cinemaID, err)
	}
	a.log.Info("Room created",
		zap.String("uid", created.ID),
		zap.String("cinema_uid", cinemaID),
		zap.Int("seats", created.Seats),
	)
	return &created, nil
}

func (a *roomAPI) Update(ctx context.Context, cinemaID string, room *entity.Room) (*entity.Room, error) {
	var updated entity.Room
	if err := a.c.put(ctx, roomsPath(cinemaID)+"/"+room.ID, room, &updated); err != nil {
		return nil, fmt.Errorf("update room %s: %w", room.ID, err)
	}
	return &updated, nil
}

func (a *roomAPI) Delete(ctx context.Context, cinemaID, roomID string) error {
	if err := a.c.delete(ctx, roomsPath(cinemaID)+"/"+roomID); err != nil {
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}
	a.log.Info("Room deleted", zap.String("uid", roomID), zap.String("cinema_uid", cinemaID))
	return nil
}
