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
	AddPosition(ctx context.Context) error
	ListPositions(ctx context.Context) error
	DeletePosition(ctx context.Context) error
	AddShift(ctx context.Context) error
	ListShifts(ctx context.Context) error
	DeleteShift(ctx context.Context) error
	Stats(ctx context.Context) error
	Weeks(ctx context.Context) error
	Mode(ctx context.Context) error
}

// runREPL is the interactive command loop of the WorkProof CLI.
//
// It reads a line from the provided scanner, takes the first token as the
// command, and dispatches to methods on a. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn). The set of accepted
// commands depends on whether a user is logged in; "help" prints the set
// for the current state.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wp> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: addpos, positions, delpos, addshift, shifts, delshift, stats, weeks, mode, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "addpos":
			_ = a.AddPosition(ctx)

		case "positions":
			_ = a.ListPositions(ctx)

		case "delpos":
			_ = a.DeletePosition(ctx)

		case "addshift":
			_ = a.AddShift(ctx)

		case "shifts":
			_ = a.ListShifts(ctx)

		case "delshift":
			_ = a.DeleteShift(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "weeks":
			_ = a.Weeks(ctx)

		case "mode":
			_ = a.Mode(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
