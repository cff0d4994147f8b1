package handler

import (
	stdErrors "errors"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/meetbrief-team/meetbrief/errors"
	"github.com/meetbrief-team/meetbrief/internal/adapter/dto/common"
	webhookdto "github.com/meetbrief-team/meetbrief/internal/adapter/dto/webhook"
	transcriptuc "github.com/meetbrief-team/meetbrief/internal/usecase/transcript"
)

// transcriptReadyEvent is the only event type acted on
const transcriptReadyEvent = "transcript.ready-to-download"

// Webhook handles inbound video platform events
type Webhook struct {
	transcriptService *transcriptuc.Service
	logger            *zap.Logger
}

// NewWebhook creates a new webhook handler
func NewWebhook(transcriptService *transcriptuc.Service, logger *zap.Logger) *Webhook {
	return &Webhook{
		transcriptService: transcriptService,
		logger:            logger,
	}
}

// Handle processes one webhook delivery. The wire contract is fixed: 200
// {"received":true} for every delivery except a malformed
// transcript.ready-to-download payload, which gets 400 {"error":"Invalid
// payload"}.
// POST /v1/webhooks/daily
func (h *Webhook) Handle(c echo.Context) error {
	var envelope webhookdto.Envelope
	if err := c.Bind(&envelope); err != nil {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid payload"})
	}

	if envelope.Type != transcriptReadyEvent {
		return c.JSON(http.StatusOK, common.ReceivedResponse{Received: true})
	}

	h.logger.Info("transcript ready event received",
		zap.String("transcript_id", envelope.Payload.ID),
		zap.String("room_name", envelope.Payload.RoomName))

	err := h.transcriptService.ProcessReadyEvent(c.Request().Context(), transcriptuc.ReadyEvent{
		RoomName:     envelope.Payload.RoomName,
		TranscriptID: envelope.Payload.ID,
		Duration:     roundSeconds(envelope.Payload.Duration),
	})
	if err != nil {
		var appErr apperrors.AppError
		if stdErrors.As(err, &appErr) && appErr.Code == apperrors.ErrorCode_INVALID_PAYLOAD {
			return c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid payload"})
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, common.ReceivedResponse{Received: true})
}

// roundSeconds converts a possibly fractional duration to whole seconds
func roundSeconds(d *float64) *int {
	if d == nil {
		return nil
	}
	s := int(math.Round(*d))
	return &s
}
