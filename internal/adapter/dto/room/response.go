package room

// RoomResponse represents the created room descriptor
type RoomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Privacy   string `json:"privacy,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// TokenResponse represents the issued meeting token
type TokenResponse struct {
	Token   string `json:"token"`
	IsOwner bool   `json:"isOwner"`
}
