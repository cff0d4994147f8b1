package transcript

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetbrief-team/meetbrief/errors"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/daily"
)

const sampleVTT = "WEBVTT\n\n00:00:01.000 --> 00:00:03.000\n<v>Alice:</v>Hello there\n"

type fakeDaily struct {
	getTranscriptFn func(ctx context.Context, id string) (*daily.TranscriptInfo, error)
	accessLinkFn    func(ctx context.Context, id string) (string, error)
	downloadFn      func(ctx context.Context, link string) (string, error)
	listFn          func(ctx context.Context) ([]daily.TranscriptInfo, error)
}

func (f *fakeDaily) CreateRoom(context.Context, string) (*daily.RoomInfo, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDaily) CreateMeetingToken(context.Context, string, string, bool) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeDaily) GetTranscript(ctx context.Context, id string) (*daily.TranscriptInfo, error) {
	return f.getTranscriptFn(ctx, id)
}

func (f *fakeDaily) GetTranscriptAccessLink(ctx context.Context, id string) (string, error) {
	return f.accessLinkFn(ctx, id)
}

func (f *fakeDaily) ListTranscripts(ctx context.Context) ([]daily.TranscriptInfo, error) {
	return f.listFn(ctx)
}

func (f *fakeDaily) DownloadContent(ctx context.Context, link string) (string, error) {
	return f.downloadFn(ctx, link)
}

type fakeTranscriptRepo struct {
	upserted []*entities.Transcript
	stored   map[string]*entities.Transcript
}

func (f *fakeTranscriptRepo) Upsert(_ context.Context, t *entities.Transcript) error {
	f.upserted = append(f.upserted, t)
	return nil
}

func (f *fakeTranscriptRepo) FindByTranscriptID(_ context.Context, id string) (*entities.Transcript, error) {
	return f.stored[id], nil
}

type fakeRoomRepo struct {
	byName map[string]*entities.Room
	names  []string
}

func (f *fakeRoomRepo) Create(context.Context, *entities.Room) error { return nil }

func (f *fakeRoomRepo) FindByName(_ context.Context, name string) (*entities.Room, error) {
	return f.byName[name], nil
}

func (f *fakeRoomRepo) FindNamesByCreator(context.Context, uuid.UUID) ([]string, error) {
	return f.names, nil
}

type fakeSummarizer struct {
	briefing *entities.MeetingBriefing
	gotText  string
	called   bool
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) *entities.MeetingBriefing {
	f.called = true
	f.gotText = text
	return f.briefing
}

type memCache struct {
	data map[string]string
}

func (m *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	return nil
}

func (m *memCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func happyDaily() *fakeDaily {
	return &fakeDaily{
		getTranscriptFn: func(_ context.Context, id string) (*daily.TranscriptInfo, error) {
			return &daily.TranscriptInfo{TranscriptID: id, RoomName: "daily-abc", Status: "t_finished"}, nil
		},
		accessLinkFn: func(_ context.Context, id string) (string, error) {
			return "https://cdn.example/" + id + ".vtt", nil
		},
		downloadFn: func(_ context.Context, link string) (string, error) {
			return sampleVTT, nil
		},
	}
}

func TestProcessReadyEvent_FullPipeline(t *testing.T) {
	repo := &fakeTranscriptRepo{}
	sum := &fakeSummarizer{briefing: &entities.MeetingBriefing{
		Title:            "Standup",
		ExecutiveSummary: "Short sync.",
		KeyPoints:        []string{"greetings"},
		SpeakerInsights:  []string{"Alice opened", "Bob agreed"},
	}}
	svc := NewService(happyDaily(), repo, &fakeRoomRepo{}, sum, nil, nil, zap.NewNop())

	dur := 120
	err := svc.ProcessReadyEvent(context.Background(), ReadyEvent{
		RoomName: "daily-abc", TranscriptID: "t-1", Duration: &dur,
	})
	if err != nil {
		t.Fatalf("ProcessReadyEvent: %v", err)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upserted))
	}
	rec := repo.upserted[0]
	if !rec.HasContent() || *rec.Content != sampleVTT {
		t.Fatalf("content not persisted: %+v", rec)
	}
	if rec.Duration == nil || *rec.Duration != 120 {
		t.Fatalf("payload duration not kept: %v", rec.Duration)
	}
	if !rec.HasBriefing() || *rec.Title != "Standup" {
		t.Fatalf("briefing not applied: %+v", rec)
	}
	if *rec.SpeakerInsights != "Alice opened\nBob agreed" {
		t.Fatalf("speaker insights not joined: %q", *rec.SpeakerInsights)
	}
	if sum.gotText != "Alice: Hello there" {
		t.Fatalf("summarizer got raw captions, want flattened text: %q", sum.gotText)
	}
}

func TestProcessReadyEvent_MissingIDIsInvalidPayload(t *testing.T) {
	repo := &fakeTranscriptRepo{}
	svc := NewService(happyDaily(), repo, &fakeRoomRepo{}, &fakeSummarizer{}, nil, nil, zap.NewNop())

	err := svc.ProcessReadyEvent(context.Background(), ReadyEvent{RoomName: "daily-abc"})
	appErr, ok := err.(apperrors.AppError)
	if !ok || appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400 AppError, got %v", err)
	}
	if len(repo.upserted) != 0 {
		t.Fatal("invalid payload must not persist anything")
	}
}

func TestProcessReadyEvent_MetadataFailureAcksWithoutPersisting(t *testing.T) {
	d := happyDaily()
	d.getTranscriptFn = func(context.Context, string) (*daily.TranscriptInfo, error) {
		return nil, &daily.APIError{StatusCode: 500, Message: "boom"}
	}
	repo := &fakeTranscriptRepo{}
	svc := NewService(d, repo, &fakeRoomRepo{}, &fakeSummarizer{}, nil, nil, zap.NewNop())

	err := svc.ProcessReadyEvent(context.Background(), ReadyEvent{RoomName: "daily-abc", TranscriptID: "t-1"})
	if err != nil {
		t.Fatalf("metadata failure must still ack: %v", err)
	}
	if len(repo.upserted) != 0 {
		t.Fatal("metadata failure must not persist")
	}
}

func TestProcessReadyEvent_LinkFailurePersistsNilContent(t *testing.T) {
	d := happyDaily()
	d.accessLinkFn = func(context.Context, string) (string, error) {
		return "", &daily.APIError{StatusCode: 404, Message: "no link"}
	}
	repo := &fakeTranscriptRepo{}
	sum := &fakeSummarizer{}
	svc := NewService(d, repo, &fakeRoomRepo{}, sum, nil, nil, zap.NewNop())

	if err := svc.ProcessReadyEvent(context.Background(), ReadyEvent{RoomName: "daily-abc", TranscriptID: "t-1"}); err != nil {
		t.Fatalf("link failure must still ack: %v", err)
	}
	if len(repo.upserted) != 1 {
		t.Fatal("metadata should be persisted without content")
	}
	rec := repo.upserted[0]
	if rec.HasContent() {
		t.Fatal("content should be absent")
	}
	if rec.Status != "t_finished" {
		t.Fatalf("status lost: %q", rec.Status)
	}
	if sum.called {
		t.Fatal("summarizer must not run without content")
	}
}

func TestProcessReadyEvent_SummaryFailureStillPersistsContent(t *testing.T) {
	repo := &fakeTranscriptRepo{}
	svc := NewService(happyDaily(), repo, &fakeRoomRepo{}, &fakeSummarizer{briefing: nil}, nil, nil, zap.NewNop())

	if err := svc.ProcessReadyEvent(context.Background(), ReadyEvent{RoomName: "daily-abc", TranscriptID: "t-1"}); err != nil {
		t.Fatalf("summary failure must still ack: %v", err)
	}
	rec := repo.upserted[0]
	if !rec.HasContent() {
		t.Fatal("content must be persisted despite summary failure")
	}
	if rec.HasBriefing() || rec.Title != nil || len(rec.KeyPoints) != 0 {
		t.Fatalf("briefing fields must stay absent: %+v", rec)
	}
}

func TestListForUser_FiltersToOwnedRooms(t *testing.T) {
	d := happyDaily()
	d.listFn = func(context.Context) ([]daily.TranscriptInfo, error) {
		return []daily.TranscriptInfo{
			{TranscriptID: "t-1", RoomName: "daily-abc"},
			{TranscriptID: "t-2", RoomName: "someone-elses-room"},
		}, nil
	}
	rooms := &fakeRoomRepo{names: []string{"daily-abc"}}
	svc := NewService(d, &fakeTranscriptRepo{}, rooms, &fakeSummarizer{}, nil, nil, zap.NewNop())

	list, err := svc.ListForUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 1 || list[0].TranscriptID != "t-1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestListForUser_PropagatesUpstreamStatus(t *testing.T) {
	d := happyDaily()
	d.listFn = func(context.Context) ([]daily.TranscriptInfo, error) {
		return nil, &daily.APIError{StatusCode: http.StatusBadGateway, Message: "down"}
	}
	svc := NewService(d, &fakeTranscriptRepo{}, &fakeRoomRepo{}, &fakeSummarizer{}, nil, nil, zap.NewNop())

	_, err := svc.ListForUser(context.Background(), uuid.New())
	appErr, ok := err.(apperrors.AppError)
	if !ok || appErr.HTTPCode != http.StatusBadGateway {
		t.Fatalf("expected upstream 502, got %v", err)
	}
}

func TestListForUser_SecondCallServedFromCache(t *testing.T) {
	calls := 0
	d := happyDaily()
	d.listFn = func(context.Context) ([]daily.TranscriptInfo, error) {
		calls++
		return []daily.TranscriptInfo{{TranscriptID: "t-1", RoomName: "daily-abc"}}, nil
	}
	svc := NewService(d, &fakeTranscriptRepo{}, &fakeRoomRepo{names: []string{"daily-abc"}},
		&fakeSummarizer{}, nil, &memCache{}, zap.NewNop())

	userID := uuid.New()
	if _, err := svc.ListForUser(context.Background(), userID); err != nil {
		t.Fatalf("first call: %v", err)
	}
	list, err := svc.ListForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}
	if len(list) != 1 {
		t.Fatalf("cached list lost entries: %+v", list)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(happyDaily(), &fakeTranscriptRepo{stored: map[string]*entities.Transcript{}},
		&fakeRoomRepo{}, &fakeSummarizer{}, nil, nil, zap.NewNop())

	_, err := svc.GetByID(context.Background(), uuid.New(), "missing")
	appErr, ok := err.(apperrors.AppError)
	if !ok || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestGetByID_ForbiddenForNonOwner(t *testing.T) {
	owner := uuid.New()
	repo := &fakeTranscriptRepo{stored: map[string]*entities.Transcript{
		"t-1": {TranscriptID: "t-1", RoomName: "daily-abc"},
	}}
	rooms := &fakeRoomRepo{byName: map[string]*entities.Room{
		"daily-abc": {RoomName: "daily-abc", CreatorID: owner},
	}}
	svc := NewService(happyDaily(), repo, rooms, &fakeSummarizer{}, nil, nil, zap.NewNop())

	_, err := svc.GetByID(context.Background(), uuid.New(), "t-1")
	appErr, ok := err.(apperrors.AppError)
	if !ok || appErr.HTTPCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}

	if _, err := svc.GetByID(context.Background(), owner, "t-1"); err != nil {
		t.Fatalf("owner should read own transcript: %v", err)
	}
}

func TestGetByID_UnrecordedRoomDoesNotBlockAccess(t *testing.T) {
	repo := &fakeTranscriptRepo{stored: map[string]*entities.Transcript{
		"t-1": {TranscriptID: "t-1", RoomName: "external-room"},
	}}
	svc := NewService(happyDaily(), repo, &fakeRoomRepo{byName: map[string]*entities.Room{}},
		&fakeSummarizer{}, nil, nil, zap.NewNop())

	if _, err := svc.GetByID(context.Background(), uuid.New(), "t-1"); err != nil {
		t.Fatalf("missing ownership record must not block: %v", err)
	}
}

func TestEntries_ParsesStoredContent(t *testing.T) {
	content := sampleVTT
	repo := &fakeTranscriptRepo{stored: map[string]*entities.Transcript{
		"t-1": {TranscriptID: "t-1", RoomName: "external-room", Content: &content},
	}}
	svc := NewService(happyDaily(), repo, &fakeRoomRepo{}, &fakeSummarizer{}, nil, nil, zap.NewNop())

	entries, err := svc.Entries(context.Background(), uuid.New(), "t-1")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Speaker != "Alice" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestEntries_NoContentYieldsEmptySlice(t *testing.T) {
	repo := &fakeTranscriptRepo{stored: map[string]*entities.Transcript{
		"t-1": {TranscriptID: "t-1", RoomName: "external-room"},
	}}
	svc := NewService(happyDaily(), repo, &fakeRoomRepo{}, &fakeSummarizer{}, nil, nil, zap.NewNop())

	entries, err := svc.Entries(context.Background(), uuid.New(), "t-1")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty slice, got %v", entries)
	}
}
