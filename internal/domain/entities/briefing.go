package entities

import "strings"

// MeetingBriefing is the structured summary produced by the generative model
// from flattened dialogue text. Field names match the JSON schema requested in
// the prompt so the model reply can be decoded directly.
type MeetingBriefing struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ExecutiveSummary string   `json:"executive_summary"`
	KeyPoints        []string `json:"key_points"`
	ImportantNumbers []string `json:"important_numbers"`
	ActionItems      []string `json:"action_items"`
	SpeakerInsights  []string `json:"speaker_insights"`
	QuestionsRaised  []string `json:"questions_raised"`
	OpenQuestions    []string `json:"open_questions"`
}

// JoinedSpeakerInsights flattens the insight list into the single text column
// the read model exposes.
func (b *MeetingBriefing) JoinedSpeakerInsights() string {
	return strings.Join(b.SpeakerInsights, "\n")
}
