// Package items implements storage and listing of lost/found item reports.
// Lost and found items are structurally identical, so one repository/service
// pair is parameterized by a Category and instantiated twice.
package items

// Category describes how one item collection is stored and presented:
// which table holds it, what its event-date column is called, and the role
// label under which the owner's email appears in joined listings.
//
// Table, DateColumn and EmailAlias are compile-time constants chosen from
// the two fixed instances below; they are never derived from user input.
type Category struct {
	Name       string
	Table      string
	DateColumn string
	EmailAlias string
}

var (
	Lost = Category{
		Name:       "lost",
		Table:      "lost_items",
		DateColumn: "date_lost",
		EmailAlias: "reporter_email",
	}

	Found = Category{
		Name:       "found",
		Table:      "found_items",
		DateColumn: "date_found",
		EmailAlias: "finder_email",
	}
)
