package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Open(ctx context.Context, name string, args []string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
}

// commandRoutes maps REPL commands to view names. Commands not listed here
// (help, login, register, logout, exit) are handled directly by the loop.
var commandRoutes = map[string]string{
	"home":          "home",
	"tools":         "tools",
	"tool":          "tool-detail",
	"rankings":      "rankings",
	"publish":       "publish",
	"my-tools":      "my-tools",
	"mytools":       "my-tools",
	"borrows":       "borrows",
	"requests":      "borrow-requests",
	"profile":       "profile",
	"notifications": "notifications",
	"dashboard":     "admin-dashboard",
	"users":         "admin-users",
	"audit":         "admin-tools",
	"announcements": "admin-announcements",
}

// runREPL starts a read–eval–print loop for the toolshare CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. View commands go through
// a.Open so every navigation runs past the guard; remaining tokens are
// handed to the view as arguments (e.g. "tool 12 borrow need it saturday").
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Command handler errors are printed and the loop continues; the REPL never
// terminates on a failed command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "toolshare %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(out, a.isLoggedIn(), a.isAdmin())

		case "login":
			if err := a.Login(ctx); err != nil {
				fmt.Fprintln(out, "Error:", err)
			}

		case "register":
			if err := a.Register(ctx); err != nil {
				fmt.Fprintln(out, "Error:", err)
			}

		case "logout":
			if err := a.Logout(ctx); err != nil {
				fmt.Fprintln(out, "Error:", err)
			}

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			route, ok := commandRoutes[cmd]
			if !ok {
				fmt.Fprintln(out, "Unknown command:", cmd)
				continue
			}
			if err := a.Open(ctx, route, args); err != nil {
				fmt.Fprintln(out, "Error:", err)
			}
		}
	}
}

func printHelp(out io.Writer, loggedIn, admin bool) {
	fmt.Fprintln(out, "Browse: home, tools [keyword] [category], tool <id>, rankings")
	if !loggedIn {
		fmt.Fprintln(out, "Account: login, register")
	} else {
		fmt.Fprintln(out, "Sharing: publish, my-tools, borrows, requests")
		fmt.Fprintln(out, "Account: profile, notifications, logout")
	}
	if admin {
		fmt.Fprintln(out, "Admin: dashboard, users, audit, announcements")
	}
	fmt.Fprintln(out, "Other: help, exit")
}
