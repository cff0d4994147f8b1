package presenter

import (
	roomdto "github.com/meetbrief-team/meetbrief/internal/adapter/dto/room"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/daily"
)

// ToRoomResponse converts a platform room descriptor to the response DTO
func ToRoomResponse(info *daily.RoomInfo) *roomdto.RoomResponse {
	if info == nil {
		return nil
	}
	return &roomdto.RoomResponse{
		ID:        info.ID,
		Name:      info.Name,
		URL:       info.URL,
		Privacy:   info.Privacy,
		CreatedAt: info.CreatedAt,
	}
}
