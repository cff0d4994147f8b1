package room

// CreateRoomRequest represents the request to create a room. The name is
// optional; the video platform generates one when absent.
type CreateRoomRequest struct {
	RoomName string `json:"roomName" validate:"omitempty,min=1,max=128"`
}

// TokenRequest represents the request to issue a meeting join token
type TokenRequest struct {
	RoomName string `json:"roomName" validate:"required,min=1,max=128"`
}
