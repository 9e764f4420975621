package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/campusreg/lostfound/internal/client/api"
	"github.com/campusreg/lostfound/internal/client/config"
	"github.com/campusreg/lostfound/internal/client/session"
)

// apiClient is the server surface the CLI needs. The real api.Client
// satisfies it; tests provide a stub.
type apiClient interface {
	SetToken(token string)
	Register(ctx context.Context, collegeID, email, password string) (*api.Credentials, error)
	Login(ctx context.Context, collegeID, password string) (*api.Credentials, error)
	CreateItem(ctx context.Context, category string, form api.ItemForm, imageFile string) (*api.Item, error)
	ListAll(ctx context.Context, category string) ([]api.Item, error)
	ListMine(ctx context.Context, category string) ([]api.Item, error)
	AdminListAll(ctx context.Context, category string) ([]api.Item, error)
	AdminUsers(ctx context.Context) ([]api.User, error)
}

// sessionStore persists the signed-in state between runs.
type sessionStore interface {
	Load() (*session.Session, error)
	Save(*session.Session) error
	Clear() error
}

type App struct {
	config  *config.Config
	client  apiClient
	store   sessionStore
	session *session.Session
	reader  *bufio.Reader
}

// NewApp wires the API client and the session store and restores a
// previously saved session, so a signed-in user stays signed in across runs.
func NewApp(c *config.Config) (*App, error) {

	sessionFile := c.SessionFile
	if sessionFile == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		sessionFile = path
	}

	client := api.New(c.ServerURL)
	store := session.NewFileStore(sessionFile)

	sess, err := store.Load()
	if err != nil {
		return nil, err
	}
	if sess != nil {
		client.SetToken(sess.Token)
	}

	return &App{
		config:  c,
		client:  client,
		store:   store,
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) isAdmin() bool {
	return a.session != nil && a.session.User.IsAdmin
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	s := a.session.User.Email
	if a.session.User.IsAdmin {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the campus lost-and-found CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
