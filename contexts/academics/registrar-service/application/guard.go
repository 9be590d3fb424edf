package application

import (
	"context"
	"errors"

	"campus/contexts/academics/registrar-service/domain/entities"
	domainerrors "campus/contexts/academics/registrar-service/domain/errors"
	"campus/contexts/academics/registrar-service/ports"
)

// requireRole resolves the caller-supplied actor id and checks its role.
// The id itself is the claimed identity; there is no session or token.
// The resolved user is returned so callers avoid a second lookup.
func requireRole(
	ctx context.Context,
	repository ports.IdentityRepository,
	actorID int,
	role entities.Role,
) (entities.User, error) {
	user, err := repository.GetUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) && role == entities.RoleAdmin {
			return entities.User{}, domainerrors.ErrAdminNotFound
		}
		return entities.User{}, err
	}
	if user.Role != role {
		if role == entities.RoleAdmin {
			return entities.User{}, domainerrors.ErrAdminRequired
		}
		return entities.User{}, domainerrors.ErrStudentRequired
	}
	return user, nil
}
