package room

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetbrief-team/meetbrief/errors"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/domain/repositories"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/daily"
)

// Service forwards room and token requests to the video platform. The rooms
// table is only an ownership mirror; the platform stays the source of truth
// for room existence.
type Service struct {
	daily    daily.Client
	roomRepo repositories.RoomRepository
	logger   *zap.Logger
}

// NewService creates a new room service
func NewService(dailyClient daily.Client, roomRepo repositories.RoomRepository, logger *zap.Logger) *Service {
	return &Service{
		daily:    dailyClient,
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// TokenResult carries the issued join token and the resolved ownership flag
type TokenResult struct {
	Token   string `json:"token"`
	IsOwner bool   `json:"isOwner"`
}

// CreateRoom creates a room on the platform and mirrors {room_name, creator_id}
// locally. The mirror write is best-effort: a failure is logged and the room is
// still returned, it just will not show up in the creator's transcript list.
func (s *Service) CreateRoom(ctx context.Context, creatorID uuid.UUID, roomName string) (*daily.RoomInfo, error) {
	info, err := s.daily.CreateRoom(ctx, roomName)
	if err != nil {
		return nil, apperrors.ErrRoomCreationFailed(upstreamStatus(err), err)
	}

	if err := s.roomRepo.Create(ctx, &entities.Room{
		RoomName:  info.Name,
		CreatorID: creatorID,
	}); err != nil {
		s.logger.Warn("failed to record room ownership",
			zap.String("room_name", info.Name),
			zap.String("creator_id", creatorID.String()),
			zap.Error(err))
	}

	return info, nil
}

// IssueToken issues a meeting token for the room. The is_owner claim comes
// from the local ownership mirror; an absent or unreadable record means
// is_owner=false, never an error.
func (s *Service) IssueToken(ctx context.Context, userID uuid.UUID, userName, roomName string) (*TokenResult, error) {
	isOwner := false
	record, err := s.roomRepo.FindByName(ctx, roomName)
	switch {
	case err != nil:
		s.logger.Warn("ownership lookup failed, defaulting to non-owner",
			zap.String("room_name", roomName),
			zap.Error(err))
	case record != nil:
		isOwner = record.IsOwnedBy(userID)
	}

	token, err := s.daily.CreateMeetingToken(ctx, roomName, userName, isOwner)
	if err != nil {
		return nil, apperrors.ErrTokenIssuanceFailed(upstreamStatus(err), err)
	}

	return &TokenResult{Token: token, IsOwner: isOwner}, nil
}

// upstreamStatus extracts the platform status code, 0 when the failure was not
// an HTTP-level one
func upstreamStatus(err error) int {
	var apiErr *daily.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
