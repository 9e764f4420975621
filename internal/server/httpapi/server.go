// Package httpapi exposes the registry over HTTP: routing, auth middleware,
// JSON encoding and the mapping from service errors to status codes.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/campusreg/lostfound/internal/logging"
	"github.com/campusreg/lostfound/internal/server/config"
	"github.com/campusreg/lostfound/internal/server/items"
	"github.com/campusreg/lostfound/internal/server/uploads"
	"github.com/campusreg/lostfound/internal/server/users"
	"github.com/gorilla/mux"
)

// AuthService is the account surface the API depends on.
type AuthService interface {
	Register(ctx context.Context, collegeID, email, password string) (string, users.Public, error)
	Login(ctx context.Context, collegeID, password string) (string, users.Public, error)
	ListAll(ctx context.Context) ([]users.Public, error)
}

// ItemService is one item category (lost or found).
type ItemService interface {
	Category() items.Category
	Create(ctx context.Context, n items.NewItem) (*items.Item, error)
	ListAll(ctx context.Context) ([]items.Item, error)
	ListByUser(ctx context.Context, userID int64) ([]items.Item, error)
}

type Server struct {
	addr      string
	secret    []byte
	uploadDir string
	logger    logging.Logger
	auth      AuthService
	lost      ItemService
	found     ItemService
	store     uploads.Store
}

func NewServer(cfg *config.Config, logger logging.Logger, auth AuthService, lost, found ItemService, store uploads.Store) *Server {
	return &Server{
		addr:      cfg.HTTPAddr,
		secret:    []byte(cfg.SecretKey),
		uploadDir: cfg.UploadDir,
		logger:    logger,
		auth:      auth,
		lost:      lost,
		found:     found,
		store:     store,
	}
}

// Router builds the full route table. Middleware order on protected routes
// is fixed: authenticate runs before requireAdmin, which runs before the
// handler.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/auth/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/auth/login", s.handleLogin).Methods("POST")

	for _, svc := range []ItemService{s.lost, s.found} {
		base := "/" + svc.Category().Name
		r.HandleFunc(base, s.authenticate(s.handleCreateItem(svc))).Methods("POST")
		r.HandleFunc(base, s.authenticate(s.handleListAll(svc))).Methods("GET")
		r.HandleFunc(base+"/mine", s.authenticate(s.handleListMine(svc))).Methods("GET")
	}

	r.HandleFunc("/admin/users", s.authenticate(s.requireAdmin(s.handleAdminUsers))).Methods("GET")
	r.HandleFunc("/admin/lost", s.authenticate(s.requireAdmin(s.handleListAll(s.lost)))).Methods("GET")
	r.HandleFunc("/admin/found", s.authenticate(s.requireAdmin(s.handleListAll(s.found)))).Methods("GET")

	// Uploaded images are public static content mirroring the storage dir.
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadDir))))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Lost/Found API is running"))
	}).Methods("GET")

	return s.requestLogger(r)
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
