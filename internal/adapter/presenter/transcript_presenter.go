package presenter

import (
	transcriptdto "github.com/meetbrief-team/meetbrief/internal/adapter/dto/transcript"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/daily"
)

// ToTranscriptListResponse converts live platform transcript descriptors to
// list rows
func ToTranscriptListResponse(list []daily.TranscriptInfo) []transcriptdto.ListItemResponse {
	rows := make([]transcriptdto.ListItemResponse, len(list))
	for i, t := range list {
		rows[i] = transcriptdto.ListItemResponse{
			TranscriptID: t.TranscriptID,
			RoomName:     t.RoomName,
			Status:       t.Status,
			Duration:     t.Duration,
			CreatedTs:    t.CreatedTs,
		}
	}
	return rows
}

// ToTranscriptDetailResponse converts a persisted transcript to the detail DTO
func ToTranscriptDetailResponse(t *entities.Transcript) *transcriptdto.DetailResponse {
	if t == nil {
		return nil
	}
	return &transcriptdto.DetailResponse{
		TranscriptID:       t.TranscriptID,
		RoomName:           t.RoomName,
		MeetingDate:        t.MeetingDate,
		Duration:           t.Duration,
		Status:             t.Status,
		Content:            t.Content,
		Title:              t.Title,
		Description:        t.Description,
		ExecutiveSummary:   t.ExecutiveSummary,
		KeyPoints:          t.KeyPoints,
		ImportantNumbers:   t.ImportantNumbers,
		ActionItems:        t.ActionItems,
		SpeakerInsights:    t.SpeakerInsights,
		QuestionsRaised:    t.QuestionsRaised,
		OpenQuestions:      t.OpenQuestions,
		Participants:       t.Participants,
		TranscriptLanguage: t.TranscriptLanguage,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
