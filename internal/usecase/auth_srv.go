package usecase

import (
	"context"
	"fmt"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/data/remote"

	"go.uber.org/zap"
)

type AuthService interface {
	// WhoAmI resolves the bearer credential to an identity. Authorization
	// failures keep their kind so the caller can prompt re-authentication.
	WhoAmI(ctx context.Context) (*entity.Identity, error)
}

type authService struct {
	remote *remote.Remote
	log    *zap.Logger
}

func NewAuthService(r *remote.Remote, log *zap.Logger) AuthService {
	return &authService{
		remote: r,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) WhoAmI(ctx context.Context) (*entity.Identity, error) {
	identity, err := s.remote.Auth.Verify(ctx)
	if err != nil {
		if remote.IsAuthorization(err) {
			s.log.Warn("Credential rejected", zap.Error(err))
		}
		return nil, fmt.Errorf("whoami: %w", err)
	}
	return identity, nil
}
