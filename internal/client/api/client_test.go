package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_SendsJSONAndKeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "C100", body["college_id"])
		assert.Equal(t, "a@campus.edu", body["email"])
		assert.Equal(t, "secret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  map[string]any{"id": 1, "college_id": "C100", "email": "a@campus.edu", "is_admin": false},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	creds, err := c.Register(context.Background(), "C100", "a@campus.edu", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", creds.Token)
	assert.Equal(t, "a@campus.edu", creds.User.Email)
	assert.Equal(t, "tok-1", c.token)
}

func TestLogin_ServerMessageSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials."})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "C100", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials.", err.Error())
	assert.Empty(t, c.token)
}

func TestDo_FallbackErrorWhenNoMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListAll(context.Background(), "lost")
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestListAll_BearerHeaderAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lost", r.URL.Path)
		require.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id": 3, "user_id": 1, "title": "Keys", "location": "Gym",
				"date_lost": "2026-08-28", "reporter_email": "a@campus.edu",
				"image_path": nil, "date_reported": "2026-08-29T10:00:00Z",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-9")

	list, err := c.ListAll(context.Background(), "lost")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, "2026-08-28", list[0].EventDate())
	assert.Equal(t, "a@campus.edu", list[0].OwnerEmail())
	assert.Nil(t, list[0].ImagePath)
}

func TestCreateItem_OrdinaryFormWithoutImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/found", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Umbrella", r.FormValue("title"))
		assert.Equal(t, "2026-08-30", r.FormValue("date_found"))
		assert.Equal(t, "Main Hall", r.FormValue("location"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 5, "title": "Umbrella", "date_found": "2026-08-30"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	item, err := c.CreateItem(context.Background(), "found", ItemForm{
		Title:       "Umbrella",
		Description: "black, wooden handle",
		EventDate:   "2026-08-30",
		Location:    "Main Hall",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.ID)
	assert.Equal(t, "2026-08-30", item.EventDate())
}

func TestCreateItem_MultipartWithImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lost", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		assert.Equal(t, "Blue Bottle", r.FormValue("title"))
		assert.Equal(t, "2026-08-30", r.FormValue("date_lost"))

		files := r.MultipartForm.File["image"]
		require.Len(t, files, 1)
		assert.Equal(t, "photo.png", files[0].Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 6})
	}))
	defer srv.Close()

	imgPath := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png-bytes"), 0o600))

	c := New(srv.URL)
	item, err := c.CreateItem(context.Background(), "lost", ItemForm{
		Title:     "Blue Bottle",
		EventDate: "2026-08-30",
		Location:  "Library",
	}, imgPath)
	require.NoError(t, err)
	assert.Equal(t, int64(6), item.ID)
}

func TestCreateItem_MissingImageFile(t *testing.T) {
	c := New("http://unused")
	_, err := c.CreateItem(context.Background(), "lost", ItemForm{Title: "x"}, filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
}

func TestAdminUsers_Decode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "college_id": "C100", "email": "a@campus.edu", "is_admin": true},
			{"id": 2, "college_id": "C200", "email": "b@campus.edu", "is_admin": false},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	users, err := c.AdminUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.True(t, users[0].IsAdmin)
	assert.Equal(t, "C200", users[1].CollegeID)
}
