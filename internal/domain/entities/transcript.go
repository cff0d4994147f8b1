package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Transcript is the stored transcript model, mirroring what the video platform
// produced plus the AI briefing fields filled in after summarization. Rows are
// upserted keyed on TranscriptID: repeated webhook deliveries for the same id
// overwrite rather than duplicate.
type Transcript struct {
	ID                 uint                        `gorm:"primaryKey" json:"-"`
	TranscriptID       string                      `gorm:"type:varchar(255);uniqueIndex;not null" json:"transcript_id"`
	RoomName           string                      `gorm:"type:varchar(255);index" json:"room_name"`
	MeetingDate        time.Time                   `json:"meeting_date"`
	Duration           *int                        `json:"duration,omitempty"` // seconds
	Status             string                      `gorm:"type:varchar(50)" json:"status"`
	Content            *string                     `gorm:"type:text" json:"content,omitempty"`
	Title              *string                     `gorm:"type:text" json:"title,omitempty"`
	Description        *string                     `gorm:"type:text" json:"description,omitempty"`
	ExecutiveSummary   *string                     `gorm:"type:text" json:"executive_summary,omitempty"`
	KeyPoints          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"key_points,omitempty"`
	ImportantNumbers   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"important_numbers,omitempty"`
	ActionItems        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"action_items,omitempty"`
	SpeakerInsights    *string                     `gorm:"type:text" json:"speaker_insights,omitempty"`
	QuestionsRaised    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"questions_raised,omitempty"`
	OpenQuestions      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"open_questions,omitempty"`
	Participants       *string                     `gorm:"type:text" json:"participants,omitempty"`
	TranscriptLanguage *string                     `gorm:"type:varchar(20)" json:"transcript_language,omitempty"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// HasContent reports whether raw caption text was downloaded for this transcript
func (t *Transcript) HasContent() bool {
	return t.Content != nil && *t.Content != ""
}

// HasBriefing reports whether AI briefing fields were generated
func (t *Transcript) HasBriefing() bool {
	return t.ExecutiveSummary != nil && *t.ExecutiveSummary != ""
}

// ApplyBriefing merges generated briefing fields into the transcript
func (t *Transcript) ApplyBriefing(b *MeetingBriefing) {
	if b == nil {
		return
	}
	t.Title = strPtr(b.Title)
	t.Description = strPtr(b.Description)
	t.ExecutiveSummary = strPtr(b.ExecutiveSummary)
	t.KeyPoints = datatypes.NewJSONSlice(b.KeyPoints)
	t.ImportantNumbers = datatypes.NewJSONSlice(b.ImportantNumbers)
	t.ActionItems = datatypes.NewJSONSlice(b.ActionItems)
	t.QuestionsRaised = datatypes.NewJSONSlice(b.QuestionsRaised)
	t.OpenQuestions = datatypes.NewJSONSlice(b.OpenQuestions)
	t.SpeakerInsights = strPtr(b.JoinedSpeakerInsights())
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
