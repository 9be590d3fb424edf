package application

import (
	"context"
	"log/slog"

	"campus/contexts/academics/registrar-service/domain/entities"
	"campus/contexts/academics/registrar-service/ports"
)

// IdentityService owns user creation and lookup. Users are immutable after
// creation, so there are no update or delete operations here.
type IdentityService struct {
	Repo   ports.Store
	Logger *slog.Logger
}

func (s IdentityService) CreateUser(ctx context.Context, input ports.CreateUserInput) (entities.User, error) {
	user, err := s.Repo.CreateUser(ctx, input)
	if err != nil {
		return entities.User{}, err
	}
	ResolveLogger(s.Logger).Info("user created",
		"event", "registrar_user_created",
		"module", "academics/registrar-service",
		"layer", "application",
		"user_id", user.ID,
		"role", string(user.Role),
	)
	return user, nil
}

func (s IdentityService) GetUser(ctx context.Context, userID int) (entities.User, error) {
	return s.Repo.GetUser(ctx, userID)
}

func (s IdentityService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s IdentityService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.Repo.EmailExists(ctx, email)
}
