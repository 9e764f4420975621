package items

import (
	"context"
	"fmt"
	"time"

	"github.com/campusreg/lostfound/internal/common"
)

// dateLayout is the wire format for event dates.
const dateLayout = "2006-01-02"

type Service struct {
	cat  Category
	repo Repository
}

func NewService(cat Category, repo Repository) *Service {
	return &Service{cat: cat, repo: repo}
}

// Category returns the collection this service instance serves.
func (s *Service) Category() Category {
	return s.cat
}

// Create validates the report and inserts it. Title, description, event date
// and location are all required; a missing or unparseable date is a
// validation failure, not a storage fault.
func (s *Service) Create(ctx context.Context, n NewItem) (*Item, error) {

	if n.Title == "" || n.Description == "" || n.EventDate == "" || n.Location == "" {
		return nil, common.ErrValidation
	}

	eventDate, err := time.Parse(dateLayout, n.EventDate)
	if err != nil {
		return nil, common.ErrValidation
	}

	item := &Item{
		UserID:      n.UserID,
		Title:       n.Title,
		Description: n.Description,
		EventDate:   eventDate,
		Location:    n.Location,
		ImagePath:   n.ImagePath,
	}

	item, err = s.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("creating %s item: %w", s.cat.Name, err)
	}

	return item, nil
}

// ListAll returns every report with the owner's email, newest first.
// The admin listing is the same view.
func (s *Service) ListAll(ctx context.Context) ([]Item, error) {
	return s.repo.ListAll(ctx)
}

// ListByUser returns the given user's own reports, newest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Item, error) {
	return s.repo.ListByUser(ctx, userID)
}
