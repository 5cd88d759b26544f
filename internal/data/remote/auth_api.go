package remote

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"

	"go.uber.org/zap"
)

type AuthAPI interface {
	// Verify resolves the current bearer credential to an identity.
	Verify(ctx context.Context) (*entity.Identity, error)
}

type authAPI struct {
	c   *Client
	log *zap.Logger
}

func NewAuthAPI(c *Client, log *zap.Logger) AuthAPI {
	return &authAPI{
		c:   c,
		log: log.With(zap.String("api", "auth")),
	}
}

func (a *authAPI) Verify(ctx context.Context) (*entity.Identity, error) {
	var identity entity.Identity
	if err := a.c.post(ctx, "/auth/verify", nil, &identity); err != nil {
		return nil, fmt.Errorf("verify credential: %w", err)
	}
	return &identity, nil
}
