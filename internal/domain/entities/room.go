package entities

import (
	"time"

	"github.com/google/uuid"
)

// Room is the local ownership record for a platform-hosted room. The room
// lifecycle itself is owned by the video platform; this row only associates a
// room name with the user who created it, for access control.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	RoomName  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"room_name"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null;index" json:"creator_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Room) TableName() string {
	return "rooms"
}

// IsOwnedBy reports whether the given user created this room
func (r *Room) IsOwnedBy(userID uuid.UUID) bool {
	return r.CreatorID == userID
}
