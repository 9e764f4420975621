package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusreg/lostfound/internal/common"
	"github.com/campusreg/lostfound/internal/server/items"
	"github.com/campusreg/lostfound/internal/server/uploads"
)

const dateLayout = "2006-01-02"

// multipartSlack leaves room for the text fields and encoding overhead on
// top of the image size cap.
const multipartSlack = 1 << 20

type registerRequest struct {
	CollegeID string `json:"college_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	CollegeID string `json:"college_id"`
	Password  string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, common.ErrValidation)
		return
	}

	token, user, err := s.auth.Register(r.Context(), req.CollegeID, req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, common.ErrValidation)
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.CollegeID, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: user})
}

// handleCreateItem accepts a multipart form with the report fields and an
// optional "image" file. The image, when present, is validated and written
// before the insert, so a rejected file fails the request with no row
// created. A saved image whose row insert then fails validation stays on
// disk as an orphan, which the registry accepts.
func (s *Server) handleCreateItem(svc ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxFileSize+multipartSlack)
		if err := r.ParseMultipartForm(uploads.MaxFileSize + multipartSlack); err != nil {
			// Imageless submissions may arrive as an ordinary form.
			if errors.Is(err, http.ErrNotMultipart) {
				if err := r.ParseForm(); err != nil {
					s.writeError(r.Context(), w, common.ErrValidation)
					return
				}
			} else {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					s.writeError(r.Context(), w, common.ErrFileTooLarge)
				} else {
					s.writeError(r.Context(), w, common.ErrValidation)
				}
				return
			}
		}

		var imagePath *string
		if r.MultipartForm != nil && len(r.MultipartForm.File["image"]) > 0 {
			files := r.MultipartForm.File["image"]
			rel, err := s.store.Save(files[0])
			if err != nil {
				s.writeError(r.Context(), w, err)
				return
			}
			imagePath = &rel
		}

		item, err := svc.Create(r.Context(), items.NewItem{
			UserID:      claims.UserID,
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			EventDate:   r.FormValue(svc.Category().DateColumn),
			Location:    r.FormValue("location"),
			ImagePath:   imagePath,
		})
		if err != nil {
			s.writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, itemPayload(svc.Category(), item, false))
	}
}

func (s *Server) handleListAll(svc ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListAll(r.Context())
		if err != nil {
			s.writeError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, itemPayloads(svc.Category(), list, true))
	}
}

func (s *Server) handleListMine(svc ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())

		list, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			s.writeError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, itemPayloads(svc.Category(), list, false))
	}
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.auth.ListAll(r.Context())
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// itemPayload shapes an item row for the wire: the event-date key and the
// owner-email key are named per category ("date_lost"/"reporter_email" vs
// "date_found"/"finder_email").
func itemPayload(cat items.Category, it *items.Item, withEmail bool) map[string]any {
	p := map[string]any{
		"id":            it.ID,
		"user_id":       it.UserID,
		"title":         it.Title,
		"description":   it.Description,
		cat.DateColumn:  it.EventDate.Format(dateLayout),
		"location":      it.Location,
		"image_path":    it.ImagePath,
		"date_reported": it.DateReported,
	}
	if withEmail {
		p[cat.EmailAlias] = it.OwnerEmail
	}
	return p
}

func itemPayloads(cat items.Category, list []items.Item, withEmail bool) []map[string]any {
	result := make([]map[string]any, 0, len(list))
	for i := range list {
		result = append(result, itemPayload(cat, &list[i], withEmail))
	}
	return result
}
