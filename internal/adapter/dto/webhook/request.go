package webhook

// Envelope is the event wrapper the video platform posts to the webhook
// endpoint. Only transcript.ready-to-download is acted on; every other type is
// acknowledged and ignored.
type Envelope struct {
	Type    string  `json:"type"`
	Payload Payload `json:"payload"`
}

// Payload carries the fields read from a transcript.ready-to-download event.
// Duration is seconds and may arrive fractional; it is rounded to whole
// seconds before persistence.
type Payload struct {
	RoomName string   `json:"room_name"`
	ID       string   `json:"id"`
	Duration *float64 `json:"duration,omitempty"`
}
