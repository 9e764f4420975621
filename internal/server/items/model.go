package items

import "time"

// Item is a stored report row. OwnerEmail is populated only by listings
// that join the owning user (ListAll); DateReported is assigned by the
// database at insert and never changes.
type Item struct {
	ID           int64
	UserID       int64
	Title        string
	Description  string
	EventDate    time.Time
	Location     string
	ImagePath    *string
	DateReported time.Time
	OwnerEmail   string
}

// NewItem carries a creation request. EventDate is the raw form value
// ("2006-01-02"); ImagePath is nil when no image was uploaded.
type NewItem struct {
	UserID      int64
	Title       string
	Description string
	EventDate   string
	Location    string
	ImagePath   *string
}
