package repositories

import (
	"context"

	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
)

// TranscriptRepository defines persistence operations for stored transcripts
type TranscriptRepository interface {
	// Upsert inserts or overwrites the transcript keyed on transcript_id
	Upsert(ctx context.Context, transcript *entities.Transcript) error
	FindByTranscriptID(ctx context.Context, transcriptID string) (*entities.Transcript, error)
}
