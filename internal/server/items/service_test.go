package items

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusreg/lostfound/internal/common"
)

type fakeItemRepo struct {
	createErr error
	created   *Item

	listAllOut []Item
	listMineIn int64
	listMine   []Item
}

func (f *fakeItemRepo) Create(ctx context.Context, item *Item) (*Item, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = item
	item.ID = 1
	item.DateReported = time.Now()
	return item, nil
}

func (f *fakeItemRepo) ListAll(ctx context.Context) ([]Item, error) {
	return f.listAllOut, nil
}

func (f *fakeItemRepo) ListByUser(ctx context.Context, userID int64) ([]Item, error) {
	f.listMineIn = userID
	return f.listMine, nil
}

func TestServiceCreate_Success(t *testing.T) {
	repo := &fakeItemRepo{}
	s := NewService(Lost, repo)

	got, err := s.Create(context.Background(), NewItem{
		UserID:      1,
		Title:       "Wallet",
		Description: "Black leather",
		EventDate:   "2024-01-01",
		Location:    "Library",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 1 || got.DateReported.IsZero() {
		t.Fatalf("generated fields not filled: %+v", got)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !repo.created.EventDate.Equal(want) {
		t.Fatalf("event date parsed wrong: %v", repo.created.EventDate)
	}
}

func TestServiceCreate_MissingFields(t *testing.T) {
	s := NewService(Found, &fakeItemRepo{})

	cases := []NewItem{
		{Description: "d", EventDate: "2024-01-01", Location: "l"},
		{Title: "t", EventDate: "2024-01-01", Location: "l"},
		{Title: "t", Description: "d", Location: "l"},
		{Title: "t", Description: "d", EventDate: "2024-01-01"},
	}
	for i, n := range cases {
		if _, err := s.Create(context.Background(), n); !errors.Is(err, common.ErrValidation) {
			t.Fatalf("case %d: want common.ErrValidation, got %v", i, err)
		}
	}
}

func TestServiceCreate_BadDate(t *testing.T) {
	s := NewService(Lost, &fakeItemRepo{})

	_, err := s.Create(context.Background(), NewItem{
		Title: "t", Description: "d", EventDate: "01/02/2024", Location: "l",
	})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want common.ErrValidation, got %v", err)
	}
}

func TestServiceCreate_RepoErrorWrapped(t *testing.T) {
	s := NewService(Lost, &fakeItemRepo{createErr: errors.New("db down")})

	_, err := s.Create(context.Background(), NewItem{
		Title: "t", Description: "d", EventDate: "2024-01-01", Location: "l",
	})
	if err == nil || errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestServiceListByUser_PassesUserID(t *testing.T) {
	repo := &fakeItemRepo{}
	s := NewService(Found, repo)

	if _, err := s.ListByUser(context.Background(), 42); err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if repo.listMineIn != 42 {
		t.Fatalf("user id not passed through: %d", repo.listMineIn)
	}
}
