package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
)

// RoomRepository defines persistence operations for room ownership records
type RoomRepository interface {
	Create(ctx context.Context, room *entities.Room) error
	FindByName(ctx context.Context, roomName string) (*entities.Room, error)
	FindNamesByCreator(ctx context.Context, creatorID uuid.UUID) ([]string, error)
}
