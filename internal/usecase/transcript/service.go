package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetbrief-team/meetbrief/errors"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/domain/repositories"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/daily"
	"github.com/meetbrief-team/meetbrief/pkg/vtt"
)

// Summarizer produces a best-effort briefing from flattened dialogue text.
// A nil return means no briefing; it is never an error.
type Summarizer interface {
	Summarize(ctx context.Context, transcriptText string) *entities.MeetingBriefing
}

// Archiver is the optional side-write of raw caption text to object storage
type Archiver interface {
	StoreCaptionTrack(ctx context.Context, transcriptID, content string) error
}

// ListCache is the optional best-effort cache for the live transcript list
type ListCache interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool)
	Delete(ctx context.Context, key string) error
}

const listCacheTTL = 60 * time.Second

// Service owns the transcript lifecycle: the webhook ingestion pipeline and
// the read paths scoped to room ownership.
type Service struct {
	daily          daily.Client
	transcriptRepo repositories.TranscriptRepository
	roomRepo       repositories.RoomRepository
	summarizer     Summarizer
	archive        Archiver  // nil when object storage is disabled
	cache          ListCache // nil when redis is unavailable
	logger         *zap.Logger
}

// NewService creates a new transcript service. archive and cache may be nil.
func NewService(
	dailyClient daily.Client,
	transcriptRepo repositories.TranscriptRepository,
	roomRepo repositories.RoomRepository,
	summarizer Summarizer,
	archive Archiver,
	cache ListCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		daily:          dailyClient,
		transcriptRepo: transcriptRepo,
		roomRepo:       roomRepo,
		summarizer:     summarizer,
		archive:        archive,
		cache:          cache,
		logger:         logger,
	}
}

// ReadyEvent is the relevant slice of a transcript.ready-to-download payload
type ReadyEvent struct {
	RoomName     string
	TranscriptID string
	Duration     *int // seconds
}

// ProcessReadyEvent runs the ingestion pipeline for one webhook delivery:
// metadata fetch, access link, content download, briefing, upsert. Every step
// after metadata is best-effort; whatever was obtained gets persisted. The
// only error returned is invalid payload — all other failures are logged and
// the delivery is acknowledged, matching the platform's retry semantics.
//
// Re-delivery is safe: each invocation independently re-fetches and the upsert
// overwrites the previous row.
func (s *Service) ProcessReadyEvent(ctx context.Context, event ReadyEvent) error {
	if event.RoomName == "" || event.TranscriptID == "" {
		return apperrors.ErrInvalidPayload()
	}

	meta, err := s.daily.GetTranscript(ctx, event.TranscriptID)
	if err != nil {
		// Known best-effort gap: the event is acknowledged so the sender does
		// not retry, and nothing is saved.
		s.logger.Error("transcript metadata fetch failed, skipping persistence",
			zap.String("transcript_id", event.TranscriptID),
			zap.Error(err))
		return nil
	}

	record := &entities.Transcript{
		TranscriptID: event.TranscriptID,
		RoomName:     event.RoomName,
		MeetingDate:  meetingDate(meta),
		Duration:     event.Duration,
		Status:       meta.Status,
	}
	if record.Duration == nil {
		record.Duration = meta.Duration
	}

	if content, ok := s.fetchContent(ctx, event.TranscriptID); ok {
		record.Content = &content
		s.archiveContent(ctx, event.TranscriptID, content)

		if b := s.summarizer.Summarize(ctx, vtt.Flatten(content)); b != nil {
			record.ApplyBriefing(b)
		}
	}

	if err := s.transcriptRepo.Upsert(ctx, record); err != nil {
		s.logger.Error("transcript upsert failed",
			zap.String("transcript_id", event.TranscriptID),
			zap.Error(err))
	}

	return nil
}

// fetchContent resolves the access link and downloads the caption text.
// Either step failing leaves the transcript without content, never fatal.
func (s *Service) fetchContent(ctx context.Context, transcriptID string) (string, bool) {
	link, err := s.daily.GetTranscriptAccessLink(ctx, transcriptID)
	if err != nil {
		s.logger.Warn("access link fetch failed, persisting without content",
			zap.String("transcript_id", transcriptID),
			zap.Error(err))
		return "", false
	}

	content, err := s.daily.DownloadContent(ctx, link)
	if err != nil {
		s.logger.Warn("content download failed, persisting without content",
			zap.String("transcript_id", transcriptID),
			zap.Error(err))
		return "", false
	}

	return content, true
}

// archiveContent mirrors the raw caption track into object storage, best-effort
func (s *Service) archiveContent(ctx context.Context, transcriptID, content string) {
	if s.archive == nil {
		return
	}
	if err := s.archive.StoreCaptionTrack(ctx, transcriptID, content); err != nil {
		s.logger.Warn("caption archive write failed",
			zap.String("transcript_id", transcriptID),
			zap.Error(err))
	}
}

// ListForUser returns the platform's live transcript list filtered to rooms
// the user created. Results are cached briefly per user; cache failures fall
// through to the live fetch.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]daily.TranscriptInfo, error) {
	cacheKey := fmt.Sprintf("transcripts:user:%s", userID)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			var list []daily.TranscriptInfo
			if err := json.Unmarshal([]byte(cached), &list); err == nil {
				return list, nil
			}
		}
	}

	all, err := s.daily.ListTranscripts(ctx)
	if err != nil {
		return nil, apperrors.ErrTranscriptFetchFailed(upstreamStatus(err), err)
	}

	names, err := s.roomRepo.FindNamesByCreator(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("room names by creator", err)
	}

	owned := make(map[string]struct{}, len(names))
	for _, name := range names {
		owned[name] = struct{}{}
	}

	list := make([]daily.TranscriptInfo, 0)
	for _, t := range all {
		if _, ok := owned[t.RoomName]; ok {
			list = append(list, t)
		}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(list); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), listCacheTTL); err != nil {
				s.logger.Warn("transcript list cache write failed", zap.Error(err))
			}
		}
	}

	return list, nil
}

// GetByID returns the persisted transcript. 404 when absent; 403 when the
// room's ownership record exists and names someone else. A missing ownership
// record does not block access — rooms created outside this backend have none.
func (s *Service) GetByID(ctx context.Context, userID uuid.UUID, transcriptID string) (*entities.Transcript, error) {
	record, err := s.transcriptRepo.FindByTranscriptID(ctx, transcriptID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("transcript by id", err)
	}
	if record == nil {
		return nil, apperrors.ErrTranscriptNotFound(transcriptID)
	}

	room, err := s.roomRepo.FindByName(ctx, record.RoomName)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("room by name", err)
	}
	if room != nil && !room.IsOwnedBy(userID) {
		return nil, apperrors.ErrForbidden("You do not have access to this transcript")
	}

	return record, nil
}

// Entries returns the parsed caption entries of a persisted transcript,
// applying the same ownership rules as GetByID
func (s *Service) Entries(ctx context.Context, userID uuid.UUID, transcriptID string) ([]vtt.Entry, error) {
	record, err := s.GetByID(ctx, userID, transcriptID)
	if err != nil {
		return nil, err
	}
	if !record.HasContent() {
		return []vtt.Entry{}, nil
	}
	return vtt.Parse(*record.Content), nil
}

func meetingDate(meta *daily.TranscriptInfo) time.Time {
	if meta.CreatedTs > 0 {
		return time.Unix(meta.CreatedTs, 0).UTC()
	}
	return time.Now().UTC()
}

func upstreamStatus(err error) int {
	var apiErr *daily.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
