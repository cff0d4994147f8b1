package presenter

import (
	authdto "github.com/meetbrief-team/meetbrief/internal/adapter/dto/auth"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
)

// ToUserResponse converts a mirrored identity to the public DTO
func ToUserResponse(u *entities.User) *authdto.UserResponse {
	if u == nil {
		return nil
	}
	return &authdto.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}
