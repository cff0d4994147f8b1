package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/domain/repositories"
)

// roomRepository implements the RoomRepository interface
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) repositories.RoomRepository {
	return &roomRepository{db: db}
}

// Create records the room ownership association
func (r *roomRepository) Create(ctx context.Context, room *entities.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// FindByName retrieves the ownership record for a room name. A missing record
// is not an error: (nil, nil) means no local record exists.
func (r *roomRepository) FindByName(ctx context.Context, roomName string) (*entities.Room, error) {
	var room entities.Room
	if err := r.db.WithContext(ctx).Where("room_name = ?", roomName).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// FindNamesByCreator lists the names of all rooms the user created
func (r *roomRepository) FindNamesByCreator(ctx context.Context, creatorID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&entities.Room{}).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Pluck("room_name", &names).Error
	return names, err
}
