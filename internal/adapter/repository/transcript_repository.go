package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/domain/repositories"
)

// transcriptRepository implements the TranscriptRepository interface
type transcriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) repositories.TranscriptRepository {
	return &transcriptRepository{db: db}
}

// Upsert inserts the transcript or, on transcript_id conflict, overwrites the
// existing row. Repeated webhook deliveries therefore converge on the latest
// fetched state instead of accumulating duplicates.
func (r *transcriptRepository) Upsert(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "transcript_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"room_name", "meeting_date", "duration", "status", "content",
				"title", "description", "executive_summary", "key_points",
				"important_numbers", "action_items", "speaker_insights",
				"questions_raised", "open_questions", "participants",
				"transcript_language", "updated_at",
			}),
		}).
		Create(transcript).Error
}

// FindByTranscriptID retrieves a transcript by its platform identifier
func (r *transcriptRepository) FindByTranscriptID(ctx context.Context, transcriptID string) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).Where("transcript_id = ?", transcriptID).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}
