package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	roomdto "github.com/meetbrief-team/meetbrief/internal/adapter/dto/room"
	"github.com/meetbrief-team/meetbrief/internal/adapter/presenter"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/usecase/room"
)

// Room handles room and meeting token HTTP requests
type Room struct {
	roomService *room.Service
	logger      *zap.Logger
}

// NewRoom creates a new room handler
func NewRoom(roomService *room.Service, logger *zap.Logger) *Room {
	return &Room{
		roomService: roomService,
		logger:      logger,
	}
}

// Create creates a room on the video platform
// POST /v1/rooms
func (h *Room) Create(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req roomdto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}

	info, err := h.roomService.CreateRoom(c.Request().Context(), user.ID, req.RoomName)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToRoomResponse(info))
}

// IssueToken issues a meeting join token with the resolved ownership flag
// POST /v1/rooms/token
func (h *Room) IssueToken(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req roomdto.TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}

	result, err := h.roomService.IssueToken(c.Request().Context(), user.ID, user.DisplayName(), req.RoomName)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, roomdto.TokenResponse{
		Token:   result.Token,
		IsOwner: result.IsOwner,
	})
}
