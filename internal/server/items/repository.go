package items

import "context"

type Repository interface {
	// Create inserts a row and returns it with the generated id and
	// report timestamp filled in.
	Create(ctx context.Context, item *Item) (*Item, error)

	// ListAll returns every row joined with the owning user's email,
	// most recently reported first.
	ListAll(ctx context.Context) ([]Item, error)

	// ListByUser returns only the given user's rows, same ordering,
	// without the email join.
	ListByUser(ctx context.Context, userID int64) ([]Item, error)
}
