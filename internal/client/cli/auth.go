package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/campusreg/lostfound/internal/client/api"
	"github.com/campusreg/lostfound/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a college ID, email and password and creates a new
// account. The server signs the new user in immediately, so on success the
// returned session is persisted and the token installed on the client.
func (a *App) Register(ctx context.Context) error {
	collegeID, err := getSimpleText(a.reader, "Enter college ID", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	creds, err := a.client.Register(ctx, collegeID, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	return a.startSession(creds.Token, creds.User)
}

// Login prompts for a college ID and password and authenticates. On success
// the session is persisted so later runs start signed in.
func (a *App) Login(ctx context.Context) error {
	collegeID, err := getSimpleText(a.reader, "Enter college ID", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	creds, err := a.client.Login(ctx, collegeID, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	return a.startSession(creds.Token, creds.User)
}

// Logout removes the persisted session file and forgets the token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.session = nil
	a.client.SetToken("")
	printlnFn("Logged out")
	return nil
}

// startSession persists and activates a freshly issued session.
func (a *App) startSession(token string, user api.User) error {
	sess := &session.Session{Token: token, User: user}
	if err := a.store.Save(sess); err != nil {
		log.Printf("error saving session: %v", err)
		return err
	}
	a.session = sess
	a.client.SetToken(token)
	printlnFn(fmt.Sprintf("Signed in as %s", user.Email))
	return nil
}
