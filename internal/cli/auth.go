package cli

import (
	"context"
	"os"

	"github.com/cbdowney09-alt/WorkProof/internal/common"
)

// Register prompts for the account fields and creates the account. A
// successful registration also activates the session, matching the behavior
// of a fresh login.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	user, err := a.auth.Register(ctx, name, email, string(password), string(confirm))
	if err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	if err := a.session.Activate(ctx, user); err != nil {
		printlnFn("Account created, but the session could not be started:", err)
		return err
	}

	printlnFn("Welcome,", user.Name)
	return nil
}

// Login prompts for credentials and activates the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	if err := a.session.Activate(ctx, user); err != nil {
		printlnFn("Could not start session:", err)
		return err
	}

	printlnFn("Welcome back,", user.Name)
	return nil
}

// Logout clears the persisted session marker. The user's data stays in the
// store and reappears on the next login.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	if err := a.session.Clear(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
