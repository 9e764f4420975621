// Package api is the HTTP client for the lost-and-found registry. It speaks
// the server's JSON and multipart wire formats and surfaces server-provided
// error messages verbatim.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrRequestFailed is the fallback when the server gives no usable message.
var ErrRequestFailed = errors.New("request failed")

// User is the public projection the server returns; it never carries
// password material.
type User struct {
	ID        int64  `json:"id"`
	CollegeID string `json:"college_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// Credentials is the register/login response: a signed session token plus
// the public user projection.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Item is a report row as the server renders it. Exactly one of
// DateLost/DateFound and of ReporterEmail/FinderEmail is populated,
// depending on the category and the listing variant.
type Item struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DateLost      string    `json:"date_lost,omitempty"`
	DateFound     string    `json:"date_found,omitempty"`
	Location      string    `json:"location"`
	ImagePath     *string   `json:"image_path"`
	DateReported  time.Time `json:"date_reported"`
	ReporterEmail string    `json:"reporter_email,omitempty"`
	FinderEmail   string    `json:"finder_email,omitempty"`
}

// EventDate returns whichever date field the category populated.
func (it Item) EventDate() string {
	if it.DateLost != "" {
		return it.DateLost
	}
	return it.DateFound
}

// OwnerEmail returns the reporter/finder email on joined listings, "" on
// own-items listings.
func (it Item) OwnerEmail() string {
	if it.ReporterEmail != "" {
		return it.ReporterEmail
	}
	return it.FinderEmail
}

// ItemForm carries the text fields of a creation request.
type ItemForm struct {
	Title       string
	Description string
	EventDate   string
	Location    string
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the session token sent as "Authorization: Bearer ..."
// on subsequent requests. An empty token clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Register(ctx context.Context, collegeID, email, password string) (*Credentials, error) {
	body := map[string]string{"college_id": collegeID, "email": email, "password": password}

	creds := &Credentials{}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", body, creds); err != nil {
		return nil, err
	}

	c.token = creds.Token
	return creds, nil
}

func (c *Client) Login(ctx context.Context, collegeID, password string) (*Credentials, error) {
	body := map[string]string{"college_id": collegeID, "password": password}

	creds := &Credentials{}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, creds); err != nil {
		return nil, err
	}

	c.token = creds.Token
	return creds, nil
}

// CreateItem submits a report to /<category>. With an image it builds a
// multipart form; without one it sends an ordinary urlencoded form.
func (c *Client) CreateItem(ctx context.Context, category string, form ItemForm, imageFile string) (*Item, error) {
	dateField := "date_" + category

	var (
		body        io.Reader
		contentType string
	)

	if imageFile != "" {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)

		fields := map[string]string{
			"title":       form.Title,
			"description": form.Description,
			dateField:     form.EventDate,
			"location":    form.Location,
		}
		for k, v := range fields {
			if err := w.WriteField(k, v); err != nil {
				return nil, err
			}
		}

		if err := attachImage(w, imageFile); err != nil {
			return nil, err
		}

		if err := w.Close(); err != nil {
			return nil, err
		}

		body = &buf
		contentType = w.FormDataContentType()
	} else {
		form := url.Values{
			"title":       {form.Title},
			"description": {form.Description},
			dateField:     {form.EventDate},
			"location":    {form.Location},
		}
		body = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+category, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	item := &Item{}
	if err := c.do(req, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListAll fetches /<category>: everyone's reports with owner emails.
func (c *Client) ListAll(ctx context.Context, category string) ([]Item, error) {
	return c.getItems(ctx, "/"+category)
}

// ListMine fetches /<category>/mine: the session user's own reports.
func (c *Client) ListMine(ctx context.Context, category string) ([]Item, error) {
	return c.getItems(ctx, "/"+category+"/mine")
}

// AdminListAll fetches the admin listing for a category.
func (c *Client) AdminListAll(ctx context.Context, category string) ([]Item, error) {
	return c.getItems(ctx, "/admin/"+category)
}

// AdminUsers fetches the admin user directory.
func (c *Client) AdminUsers(ctx context.Context) ([]User, error) {
	var list []User
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) getItems(ctx context.Context, path string) ([]Item, error) {
	var list []Item
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Message != "" {
			return errors.New(e.Message)
		}
		return fmt.Errorf("%w: %s", ErrRequestFailed, resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func attachImage(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	part, err := w.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return err
	}

	_, err = io.Copy(part, f)
	return err
}
