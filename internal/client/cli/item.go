package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/campusreg/lostfound/internal/client/api"
)

// AddLost collects report fields and submits a lost-item report.
func (a *App) AddLost(ctx context.Context) error {
	return a.addItem(ctx, "lost")
}

// AddFound collects report fields and submits a found-item report.
func (a *App) AddFound(ctx context.Context) error {
	return a.addItem(ctx, "found")
}

// addItem is the shared report workflow: prompt for the fields and an
// optional image path, submit, then refetch both the shared listing and the
// user's own listing so the new report is visible right away.
func (a *App) addItem(ctx context.Context, category string) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	date, err := getSimpleText(a.reader, fmt.Sprintf("Enter date %s (YYYY-MM-DD)", category), os.Stdout)
	if err != nil {
		return err
	}

	location, err := getSimpleText(a.reader, "Enter location", os.Stdout)
	if err != nil {
		return err
	}

	imageFile, err := getSimpleText(a.reader, "Enter image file path (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	form := api.ItemForm{Title: title, Description: description, EventDate: date, Location: location}

	item, err := a.client.CreateItem(ctx, category, form, imageFile)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("Report #%d created", item.ID))

	if err := a.listAll(ctx, category, ""); err != nil {
		return err
	}
	return a.listMine(ctx, category)
}

// ListLost prints everyone's lost items, filtered by query when non-empty.
func (a *App) ListLost(ctx context.Context, query string) error {
	return a.listAll(ctx, "lost", query)
}

// ListFound prints everyone's found items, filtered by query when non-empty.
func (a *App) ListFound(ctx context.Context, query string) error {
	return a.listAll(ctx, "found", query)
}

// MyLost prints the session user's own lost reports.
func (a *App) MyLost(ctx context.Context) error {
	return a.listMine(ctx, "lost")
}

// MyFound prints the session user's own found reports.
func (a *App) MyFound(ctx context.Context) error {
	return a.listMine(ctx, "found")
}

func (a *App) listAll(ctx context.Context, category, query string) error {
	list, err := a.client.ListAll(ctx, category)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printItems(category, filterItems(list, query))
	return nil
}

func (a *App) listMine(ctx context.Context, category string) error {
	list, err := a.client.ListMine(ctx, category)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("Your %s reports:", category))
	printItems(category, list)
	return nil
}

// Users prints the admin user directory.
func (a *App) Users(ctx context.Context) error {
	list, err := a.client.AdminUsers(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, u := range list {
		role := "member"
		if u.IsAdmin {
			role = "admin"
		}
		printlnFn(fmt.Sprintf("#%d %s %s (%s)", u.ID, u.CollegeID, u.Email, role))
	}
	return nil
}

// AdminLost prints the full lost-item listing.
func (a *App) AdminLost(ctx context.Context) error {
	return a.adminList(ctx, "lost")
}

// AdminFound prints the full found-item listing.
func (a *App) AdminFound(ctx context.Context) error {
	return a.adminList(ctx, "found")
}

func (a *App) adminList(ctx context.Context, category string) error {
	list, err := a.client.AdminListAll(ctx, category)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printItems(category, list)
	return nil
}

func printItems(category string, list []api.Item) {
	if len(list) == 0 {
		printlnFn(fmt.Sprintf("No %s items", category))
		return
	}
	for i := range list {
		printlnFn(formatItem(&list[i]))
	}
}

func formatItem(it *api.Item) string {
	s := fmt.Sprintf("#%d %s @ %s on %s", it.ID, it.Title, it.Location, it.EventDate())
	if email := it.OwnerEmail(); email != "" {
		s += " by " + email
	}
	if it.ImagePath != nil {
		s += " [image: " + *it.ImagePath + "]"
	}
	if it.Description != "" {
		s += "\n    " + it.Description
	}
	return s
}
