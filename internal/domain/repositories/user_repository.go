package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
)

// UserRepository defines persistence operations for mirrored identities
type UserRepository interface {
	UpsertByGoogleID(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}
