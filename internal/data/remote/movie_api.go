package remote

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"

	"go.uber.org/zap"
)

type MovieAPI interface {
	List(ctx context.Context) ([]entity.Movie, error)
	Get(ctx context.Context, id string) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error)
	Delete(ctx context.Context, id string) error
}

type movieAPI struct {
	c   *Client
	log *zap.Logger
}

func NewMovieAPI(c *Client, log *zap.Logger) MovieAPI {
	return &movieAPI{
		c:   c,
		log: log.With(zap.String("api", "movie")),
	}
}

func (a *movieAPI) List(ctx context.Context) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := a.c.get(ctx, "/movies", &movies); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (a *movieAPI) Get(ctx context.Context, id string) (*entity.Movie, error) {
	var movie entity.Movie
	if err := a.c.get(ctx, "/movies/"+id, &movie); err != nil {
		return nil, fmt.Errorf("get movie %s: %w", id, err)
	}
	return &movie, nil
}

func (a *movieAPI) Create(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	var created entity.Movie
	if err := a.c.post(ctx, "/movies", movie, &created); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	a.log.Info("Movie created", zap.String("uid", created.ID), zap.String("name", created.Name))
	return &created, nil
}

func (a *movieAPI) Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	var updated entity.Movie
	if err := a.c.put(ctx, "/movies/"+movie.ID, movie, &updated); err != nil {
		return nil, fmt.Errorf("update movie %s: %w", movie.ID, err)
	}
	return &updated, nil
}

func (a *movieAPI) Delete(ctx context.Context, id string) error {
	if err := a.c.delete(ctx, "/movies/"+id); err != nil {
		return fmt.Errorf("delete movie %s: %w", id, err)
	}
	a.log.Info("Movie deleted", zap.String("uid", id))
	return nil
}
