package daily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/meetbrief-team/meetbrief/pkg/config"
)

// Client wraps the hosted video platform REST API. Room lifecycle,
// transcription and recording all live on the platform side; this client only
// issues calls and returns identifiers.
type Client interface {
	CreateRoom(ctx context.Context, name string) (*RoomInfo, error)
	CreateMeetingToken(ctx context.Context, roomName, userName string, isOwner bool) (string, error)
	GetTranscript(ctx context.Context, transcriptID string) (*TranscriptInfo, error)
	GetTranscriptAccessLink(ctx context.Context, transcriptID string) (string, error)
	ListTranscripts(ctx context.Context) ([]TranscriptInfo, error)
	DownloadContent(ctx context.Context, link string) (string, error)
}

// APIError is returned for non-2xx platform responses so callers can
// propagate the upstream status code unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("daily api error: status=%d message=%s", e.StatusCode, e.Message)
}

// RoomInfo is the platform room descriptor
type RoomInfo struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	URL       string                 `json:"url"`
	Privacy   string                 `json:"privacy,omitempty"`
	CreatedAt string                 `json:"created_at,omitempty"`
	Config    map[string]interface{} `json:"config,omitempty"`
}

// TranscriptInfo is the platform transcript descriptor
type TranscriptInfo struct {
	TranscriptID string `json:"transcriptId"`
	RoomName     string `json:"roomName"`
	Status       string `json:"status"`
	Duration     *int   `json:"duration,omitempty"`
	MtgSessionID string `json:"mtgSessionId,omitempty"`
	CreatedTs    int64  `json:"createdTs,omitempty"`
}

// realClient is the real REST client implementation
type realClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a new platform API client. The API key is injected here,
// never read from the environment at call time.
func NewClient(cfg *config.DailyConfig) Client {
	base := "https://api.daily.co/v1"
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
	}

	return &realClient{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// defaultRoomProperties mirrors the feature set enabled for every room
func defaultRoomProperties() map[string]interface{} {
	return map[string]interface{}{
		"enable_chat":                  true,
		"enable_screenshare":           true,
		"enable_recording":             "cloud",
		"enable_advanced_chat":         true,
		"enable_emoji_reactions":       true,
		"enable_hand_raising":          true,
		"enable_breakout_rooms":        true,
		"enable_pip_ui":                true,
		"enable_people_ui":             true,
		"enable_prejoin_ui":            true,
		"enable_network_ui":            true,
		"enable_noise_cancellation_ui": true,
		"enable_live_captions_ui":      true,
		"start_video_off":              false,
		"start_audio_off":              false,
		"max_participants":             10,
	}
}

// CreateRoom creates a new room on the platform. An empty name lets the
// platform generate one.
func (c *realClient) CreateRoom(ctx context.Context, name string) (*RoomInfo, error) {
	body := map[string]interface{}{
		"properties": defaultRoomProperties(),
	}
	if name != "" {
		body["name"] = name
	}

	var room RoomInfo
	if err := c.doJSON(ctx, http.MethodPost, "/rooms", body, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateMeetingToken issues a join token for the room with the is_owner flag
// baked into the token's permission claims
func (c *realClient) CreateMeetingToken(ctx context.Context, roomName, userName string, isOwner bool) (string, error) {
	body := map[string]interface{}{
		"properties": map[string]interface{}{
			"room_name": roomName,
			"is_owner":  isOwner,
			"user_name": userName,
		},
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/meeting-tokens", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// GetTranscript fetches transcript metadata
func (c *realClient) GetTranscript(ctx context.Context, transcriptID string) (*TranscriptInfo, error) {
	var info TranscriptInfo
	if err := c.doJSON(ctx, http.MethodGet, "/transcript/"+transcriptID, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetTranscriptAccessLink fetches a short-lived download link for the raw
// caption content
func (c *realClient) GetTranscriptAccessLink(ctx context.Context, transcriptID string) (string, error) {
	var out struct {
		Link string `json:"link"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/transcript/"+transcriptID+"/access-link", nil, &out); err != nil {
		return "", err
	}
	return out.Link, nil
}

// ListTranscripts fetches all transcripts for the account
func (c *realClient) ListTranscripts(ctx context.Context) ([]TranscriptInfo, error) {
	var out struct {
		Data []TranscriptInfo `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/transcript", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// DownloadContent fetches the link target as text. The link is pre-signed so
// no Authorization header is sent.
func (c *realClient) DownloadContent(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: "content download failed"}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// doJSON issues an authenticated JSON request against the platform API
func (c *realClient) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var upstream struct {
			Error string `json:"error"`
			Info  string `json:"info"`
		}
		message := ""
		if err := json.NewDecoder(resp.Body).Decode(&upstream); err == nil {
			message = upstream.Error
			if message == "" {
				message = upstream.Info
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
