package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetbrief-team/meetbrief/internal/adapter/presenter"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/usecase/transcript"
	"github.com/meetbrief-team/meetbrief/pkg/vtt"
)

// Transcript handles transcript read HTTP requests
type Transcript struct {
	transcriptService *transcript.Service
	logger            *zap.Logger
}

// NewTranscript creates a new transcript handler
func NewTranscript(transcriptService *transcript.Service, logger *zap.Logger) *Transcript {
	return &Transcript{
		transcriptService: transcriptService,
		logger:            logger,
	}
}

// List returns the caller's live-fetched transcript list
// GET /v1/transcripts
func (h *Transcript) List(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	list, err := h.transcriptService.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTranscriptListResponse(list))
}

// Get returns a persisted transcript with its briefing fields
// GET /v1/transcripts/:id
func (h *Transcript) Get(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	record, err := h.transcriptService.GetByID(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTranscriptDetailResponse(record))
}

// Entries returns the parsed caption entries of a persisted transcript
// GET /v1/transcripts/:id/entries
func (h *Transcript) Entries(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	entries, err := h.transcriptService.Entries(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, entries)
}

// Export downloads the transcript as plain dialogue text or structured JSON
// GET /v1/transcripts/:id/export?format=txt|json
func (h *Transcript) Export(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id := c.Param("id")
	format := c.QueryParam("format")
	if format == "" {
		format = "txt"
	}

	switch format {
	case "txt":
		record, err := h.transcriptService.GetByID(c.Request().Context(), user.ID, id)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		text := ""
		if record.HasContent() {
			text = vtt.Flatten(*record.Content)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=%q", id+".txt"))
		return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(text))

	case "json":
		entries, err := h.transcriptService.Entries(c.Request().Context(), user.ID, id)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=%q", id+".json"))
		return c.JSON(http.StatusOK, entries)

	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}
}
