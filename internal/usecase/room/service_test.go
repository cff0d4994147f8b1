package room

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetbrief-team/meetbrief/errors"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/daily"
)

type fakeDaily struct {
	createRoomFn  func(ctx context.Context, name string) (*daily.RoomInfo, error)
	createTokenFn func(ctx context.Context, roomName, userName string, isOwner bool) (string, error)
}

func (f *fakeDaily) CreateRoom(ctx context.Context, name string) (*daily.RoomInfo, error) {
	return f.createRoomFn(ctx, name)
}

func (f *fakeDaily) CreateMeetingToken(ctx context.Context, roomName, userName string, isOwner bool) (string, error) {
	return f.createTokenFn(ctx, roomName, userName, isOwner)
}

func (f *fakeDaily) GetTranscript(context.Context, string) (*daily.TranscriptInfo, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDaily) GetTranscriptAccessLink(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeDaily) ListTranscripts(context.Context) ([]daily.TranscriptInfo, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDaily) DownloadContent(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

type fakeRoomRepo struct {
	created   []*entities.Room
	byName    map[string]*entities.Room
	createErr error
	findErr   error
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entities.Room) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, room)
	return nil
}

func (f *fakeRoomRepo) FindByName(_ context.Context, name string) (*entities.Room, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byName[name], nil
}

func (f *fakeRoomRepo) FindNamesByCreator(_ context.Context, creatorID uuid.UUID) ([]string, error) {
	var names []string
	for _, r := range f.byName {
		if r.CreatorID == creatorID {
			names = append(names, r.RoomName)
		}
	}
	return names, nil
}

func TestCreateRoom_RecordsOwnership(t *testing.T) {
	creator := uuid.New()
	repo := &fakeRoomRepo{byName: map[string]*entities.Room{}}
	svc := NewService(&fakeDaily{
		createRoomFn: func(_ context.Context, name string) (*daily.RoomInfo, error) {
			return &daily.RoomInfo{Name: "daily-abc", URL: "https://x.daily.co/daily-abc"}, nil
		},
	}, repo, zap.NewNop())

	info, err := svc.CreateRoom(context.Background(), creator, "")
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if info.Name != "daily-abc" {
		t.Fatalf("unexpected room %+v", info)
	}
	if len(repo.created) != 1 || repo.created[0].RoomName != "daily-abc" || repo.created[0].CreatorID != creator {
		t.Fatalf("ownership not recorded: %+v", repo.created)
	}
}

func TestCreateRoom_MirrorWriteFailureIsSwallowed(t *testing.T) {
	repo := &fakeRoomRepo{createErr: errors.New("db down")}
	svc := NewService(&fakeDaily{
		createRoomFn: func(_ context.Context, name string) (*daily.RoomInfo, error) {
			return &daily.RoomInfo{Name: "daily-abc"}, nil
		},
	}, repo, zap.NewNop())

	info, err := svc.CreateRoom(context.Background(), uuid.New(), "")
	if err != nil {
		t.Fatalf("mirror write failure must not fail the request: %v", err)
	}
	if info == nil {
		t.Fatal("expected room info")
	}
}

func TestCreateRoom_PropagatesUpstreamStatus(t *testing.T) {
	svc := NewService(&fakeDaily{
		createRoomFn: func(_ context.Context, name string) (*daily.RoomInfo, error) {
			return nil, &daily.APIError{StatusCode: http.StatusForbidden, Message: "domain limit"}
		},
	}, &fakeRoomRepo{}, zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), uuid.New(), "")
	appErr, ok := err.(apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != http.StatusForbidden {
		t.Fatalf("expected upstream 403, got %d", appErr.HTTPCode)
	}
}

func TestIssueToken_OwnerFlagFromMirror(t *testing.T) {
	creator := uuid.New()
	repo := &fakeRoomRepo{byName: map[string]*entities.Room{
		"daily-abc": {RoomName: "daily-abc", CreatorID: creator},
	}}
	var gotOwner bool
	svc := NewService(&fakeDaily{
		createTokenFn: func(_ context.Context, roomName, userName string, isOwner bool) (string, error) {
			gotOwner = isOwner
			return "tok-1", nil
		},
	}, repo, zap.NewNop())

	res, err := svc.IssueToken(context.Background(), creator, "Alice", "daily-abc")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if !res.IsOwner || !gotOwner {
		t.Fatal("creator should receive owner token")
	}
}

func TestIssueToken_UnrecordedRoomIsNotAnError(t *testing.T) {
	// Rooms created outside this backend have no ownership record; the token
	// is still issued, just without owner permissions.
	repo := &fakeRoomRepo{byName: map[string]*entities.Room{}}
	svc := NewService(&fakeDaily{
		createTokenFn: func(_ context.Context, roomName, userName string, isOwner bool) (string, error) {
			if isOwner {
				t.Fatal("unrecorded room must not grant ownership")
			}
			return "tok-2", nil
		},
	}, repo, zap.NewNop())

	res, err := svc.IssueToken(context.Background(), uuid.New(), "Bob", "never-recorded")
	if err != nil {
		t.Fatalf("absent record must not be an error: %v", err)
	}
	if res.Token != "tok-2" || res.IsOwner {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestIssueToken_LookupFailureDefaultsToNonOwner(t *testing.T) {
	repo := &fakeRoomRepo{findErr: errors.New("db down")}
	svc := NewService(&fakeDaily{
		createTokenFn: func(_ context.Context, roomName, userName string, isOwner bool) (string, error) {
			return "tok-3", nil
		},
	}, repo, zap.NewNop())

	res, err := svc.IssueToken(context.Background(), uuid.New(), "Bob", "daily-abc")
	if err != nil {
		t.Fatalf("lookup failure must not be an error: %v", err)
	}
	if res.IsOwner {
		t.Fatal("lookup failure must default to non-owner")
	}
}
