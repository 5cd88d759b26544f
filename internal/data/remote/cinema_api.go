package remote

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"

	"go.uber.org/zap"
)

type CinemaAPI interface {
	List(ctx context.Context) ([]entity.Cinema, error)
	Get(ctx context.Context, id string) (*entity.Cinema, error)
	Create(ctx context.Context, cinema *entity.Cinema) (*entity.Cinema, error)
	Update(ctx context.Context, cinema *entity.Cinema) (*entity.Cinema, error)
	Delete(ctx context.Context, id string) error
}

type cinemaAPI struct {
	c   *Client
	log *zap.Logger
}

func NewCinemaAPI(c *Client, log *zap.Logger) CinemaAPI {
	return &cinemaAPI{
		c:   c,
		log: log.With(zap.String("api", "cinema")),
	}
}

func (a *cinemaAPI) List(ctx context.Context) ([]entity.Cinema, error) {
	var cinemas []entity.Cinema
	if err := a.c.get(ctx, "/cinema", &cinemas); err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}
	return cinemas, nil
}

func (a *cinemaAPI) Get(ctx context.Context, id string) (*entity.Cinema, error) {
	var cinema entity.Cinema
	if err := a.c.get(ctx, "/cinema/"+id, &cinema); err != nil {
		return nil, fmt.Errorf("get cinema %s: %w", id, err)
	}
	return &cinema, nil
}

func (a *cinemaAPI) Create(ctx context.Context, cinema *entity.Cinema) (*entity.Cinema, error) {
	var created entity.Cinema
	if err := a.c.post(ctx, "/cinema", cinema, &created); err != nil {
		return nil, fmt.Errorf("create cinema: %w", err)
	}
	a.log.Info("Cinema created", zap.String("uid", created.ID), zap.String("name", created.Name))
	return &created, nil
}

func (a *cinemaAPI) Update(ctx context.Context, cinema *entity.Cinema) (*entity.Cinema, error) {
	var updated entity.Cinema
	if err := a.c.put(ctx, "/cinema/"+cinema.ID, cinema, &updated); err != nil {
		return nil, fmt.Errorf("update cinema %s: %w", cinema.ID, err)
	}
	return &updated, nil
}

func (a *cinemaAPI) Delete(ctx context.Context, id string) error {
	if err := a.c.delete(ctx, "/cinema/"+id); err != nil {
		return fmt.Errorf("delete cinema %s: %w", id, err)
	}
	a.log.Info("Cinema deleted", zap.String("uid", id))
	return nil
}
