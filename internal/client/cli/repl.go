package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddLost(ctx context.Context) error
	AddFound(ctx context.Context) error
	ListLost(ctx context.Context, query string) error
	ListFound(ctx context.Context, query string) error
	MyLost(ctx context.Context) error
	MyFound(ctx context.Context) error
	Users(ctx context.Context) error
	AdminLost(ctx context.Context) error
	AdminFound(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the registry CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Anything after the command is
// treated as a search query where the command supports one. Unknown commands
// are reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - addlost          — report a lost item
//	  - addfound         — report a found item
//	  - lost [query]     — list lost items, optionally filtered
//	  - found [query]    — list found items, optionally filtered
//	  - mylost           — list your own lost reports
//	  - myfound          — list your own found reports
//	  - logout           — log out and forget the session
//	  - exit | quit      — leave the program
//
//	Admins additionally:
//	  - users            — list registered users
//	  - adminlost        — full lost-item listing
//	  - adminfound       — full found-item listing
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lf> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		query := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: addlost, addfound, lost [query], found [query], mylost, myfound, logout, exit")
				if a.isAdmin() {
					printlnFn("Admin commands: users, adminlost, adminfound")
				}
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "addlost":
			_ = a.AddLost(ctx)

		case "addfound":
			_ = a.AddFound(ctx)

		case "lost":
			_ = a.ListLost(ctx, query)

		case "found":
			_ = a.ListFound(ctx, query)

		case "mylost":
			_ = a.MyLost(ctx)

		case "myfound":
			_ = a.MyFound(ctx)

		case "users":
			_ = a.Users(ctx)

		case "adminlost":
			_ = a.AdminLost(ctx)

		case "adminfound":
			_ = a.AdminFound(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
