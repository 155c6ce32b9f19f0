package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

func (a *App) getStatus() string {
	if session := a.svc.GetSession(); session != nil {
		return fmt.Sprintf("(%s)", session.User.Email)
	}
	return ""
}

// Run starts the interactive shell and blocks until the user exits or the
// input stream ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to NightOwl (type 'help' for commands)")
	a.runLoop(ctx)
}

// runLoop reads commands line by line from the app reader. The command
// prompts share that reader, so no read-ahead buffering here.
func (a *App) runLoop(ctx context.Context) {
	for {
		fmt.Fprintf(a.out, "nightowl %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			a.printHelp()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "profile":
			a.showProfile(ctx)
		case "edit":
			a.editProfile(ctx)
		case "refresh":
			a.syncer.Refetch(ctx)
			a.showProfile(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: whoami, profile, edit, refresh, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}

// SetIO redirects input/output, primarily for tests.
func (a *App) SetIO(in io.Reader, out io.Writer) {
	a.reader = bufio.NewReader(in)
	a.out = out
}
