package transcript

import "time"

// ListItemResponse is one row of the live-fetched transcript list
type ListItemResponse struct {
	TranscriptID string `json:"transcript_id"`
	RoomName     string `json:"room_name"`
	Status       string `json:"status"`
	Duration     *int   `json:"duration,omitempty"`
	CreatedTs    int64  `json:"created_ts,omitempty"`
}

// DetailResponse is the persisted transcript with its briefing fields
type DetailResponse struct {
	TranscriptID       string    `json:"transcript_id"`
	RoomName           string    `json:"room_name"`
	MeetingDate        time.Time `json:"meeting_date"`
	Duration           *int      `json:"duration,omitempty"`
	Status             string    `json:"status"`
	Content            *string   `json:"content,omitempty"`
	Title              *string   `json:"title,omitempty"`
	Description        *string   `json:"description,omitempty"`
	ExecutiveSummary   *string   `json:"executive_summary,omitempty"`
	KeyPoints          []string  `json:"key_points,omitempty"`
	ImportantNumbers   []string  `json:"important_numbers,omitempty"`
	ActionItems        []string  `json:"action_items,omitempty"`
	SpeakerInsights    *string   `json:"speaker_insights,omitempty"`
	QuestionsRaised    []string  `json:"questions_raised,omitempty"`
	OpenQuestions      []string  `json:"open_questions,omitempty"`
	Participants       *string   `json:"participants,omitempty"`
	TranscriptLanguage *string   `json:"transcript_language,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
