package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/daily"
	transcriptuc "github.com/meetbrief-team/meetbrief/internal/usecase/transcript"
)

type stubDaily struct{}

func (stubDaily) CreateRoom(context.Context, string) (*daily.RoomInfo, error) {
	return nil, errors.New("unexpected call")
}

func (stubDaily) CreateMeetingToken(context.Context, string, string, bool) (string, error) {
	return "", errors.New("unexpected call")
}

func (stubDaily) GetTranscript(_ context.Context, id string) (*daily.TranscriptInfo, error) {
	return &daily.TranscriptInfo{TranscriptID: id, RoomName: "daily-abc", Status: "t_finished"}, nil
}

func (stubDaily) GetTranscriptAccessLink(_ context.Context, id string) (string, error) {
	return "https://cdn.example/" + id + ".vtt", nil
}

func (stubDaily) ListTranscripts(context.Context) ([]daily.TranscriptInfo, error) {
	return nil, errors.New("unexpected call")
}

func (stubDaily) DownloadContent(context.Context, string) (string, error) {
	return "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\n<v>Alice:</v>hi\n", nil
}

type recordingRepo struct {
	upserts []*entities.Transcript
}

func (r *recordingRepo) Upsert(_ context.Context, t *entities.Transcript) error {
	r.upserts = append(r.upserts, t)
	return nil
}

func (r *recordingRepo) FindByTranscriptID(context.Context, string) (*entities.Transcript, error) {
	return nil, nil
}

type stubRoomRepo struct{}

func (stubRoomRepo) Create(context.Context, *entities.Room) error { return nil }

func (stubRoomRepo) FindByName(context.Context, string) (*entities.Room, error) { return nil, nil }

func (stubRoomRepo) FindNamesByCreator(context.Context, uuid.UUID) ([]string, error) {
	return nil, nil
}

type noSummarizer struct{}

func (noSummarizer) Summarize(context.Context, string) *entities.MeetingBriefing { return nil }

func newWebhookHandler(repo *recordingRepo) *Webhook {
	svc := transcriptuc.NewService(stubDaily{}, repo, stubRoomRepo{}, noSummarizer{}, nil, nil, zap.NewNop())
	return NewWebhook(svc, zap.NewNop())
}

func postWebhook(t *testing.T, h *Webhook, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/daily", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Handle(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	return rec
}

func TestWebhook_MissingIDIsRejectedWithoutPersistence(t *testing.T) {
	repo := &recordingRepo{}
	h := newWebhookHandler(repo)

	rec := postWebhook(t, h, `{"type":"transcript.ready-to-download","payload":{"room_name":"daily-abc"}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Invalid payload" {
		t.Fatalf("unexpected body %v", body)
	}
	if len(repo.upserts) != 0 {
		t.Fatal("invalid payload must not persist")
	}
}

func TestWebhook_UnrelatedEventIsAcknowledged(t *testing.T) {
	repo := &recordingRepo{}
	h := newWebhookHandler(repo)

	rec := postWebhook(t, h, `{"type":"recording.started","payload":{}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"received":true`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if len(repo.upserts) != 0 {
		t.Fatal("unrelated events must not persist")
	}
}

func TestWebhook_ReadyEventPersistsAndAcks(t *testing.T) {
	repo := &recordingRepo{}
	h := newWebhookHandler(repo)

	rec := postWebhook(t, h, `{"type":"transcript.ready-to-download","payload":{"room_name":"daily-abc","id":"t-1","duration":90}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"received":true`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if len(repo.upserts) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upserts))
	}
	rec2 := repo.upserts[0]
	if rec2.TranscriptID != "t-1" || !rec2.HasContent() {
		t.Fatalf("unexpected record %+v", rec2)
	}
	if rec2.Duration == nil || *rec2.Duration != 90 {
		t.Fatalf("duration lost: %v", rec2.Duration)
	}
}

func TestWebhook_FractionalDurationIsRoundedAndPersisted(t *testing.T) {
	repo := &recordingRepo{}
	h := newWebhookHandler(repo)

	rec := postWebhook(t, h, `{"type":"transcript.ready-to-download","payload":{"room_name":"daily-abc","id":"t-9","duration":90.7}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"received":true`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if len(repo.upserts) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upserts))
	}
	got := repo.upserts[0]
	if got.Duration == nil || *got.Duration != 91 {
		t.Fatalf("expected duration rounded to 91, got %v", got.Duration)
	}
}

func TestWebhook_MalformedJSONIsRejected(t *testing.T) {
	repo := &recordingRepo{}
	h := newWebhookHandler(repo)

	rec := postWebhook(t, h, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
