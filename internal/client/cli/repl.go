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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	UpdateAvatar(ctx context.Context, src string) error
	SetLanguage(ctx context.Context, code string) error
	ShowProfile(ctx context.Context) error
	SetBio(ctx context.Context, text string) error
	SetWebsite(ctx context.Context, website string) error
	SetSocial(ctx context.Context, network, handle string) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
//	Not logged in:
//	  help, register, login, lang <es|en>, exit | quit
//
//	Logged in:
//	  help, whoami, avatar <path-or-url>, lang <es|en>, profile,
//	  bio [text], website <url>, social <network> <handle>, logout, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("uu %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, avatar, lang, profile, bio, website, social, logout, exit")
			} else {
				printlnFn("Available commands: register, login, lang, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "avatar":
			if len(args) != 1 {
				printlnFn("Usage: avatar <path-or-url>")
				continue
			}
			_ = a.UpdateAvatar(ctx, args[0])

		case "lang":
			if len(args) != 1 {
				printlnFn("Usage: lang <es|en>")
				continue
			}
			_ = a.SetLanguage(ctx, args[0])

		case "profile":
			_ = a.ShowProfile(ctx)

		case "bio":
			_ = a.SetBio(ctx, strings.Join(args, " "))

		case "website":
			if len(args) != 1 {
				printlnFn("Usage: website <url>")
				continue
			}
			_ = a.SetWebsite(ctx, args[0])

		case "social":
			if len(args) != 2 {
				printlnFn("Usage: social <network> <handle>")
				continue
			}
			_ = a.SetSocial(ctx, args[0], args[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "avatar", "profile", "bio", "website", "social":
		return true
	}
	return false
}
