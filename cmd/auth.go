package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mvx/internal/session"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin creates a local session for the given username. The password is
// accepted for interface compatibility and ignored; no server is consulted.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	if username == "" {
		return fmt.Errorf("%w: username", shared.ErrMissingArgument)
	}
	if r.auth == nil {
		return fmt.Errorf("%w: session store unavailable", shared.ErrSessionStorage)
	}

	if err := r.auth.Login(username, cmd.String("password")); err != nil {
		return err
	}

	return r.writePlain("✓ Logged in as %s\n", username)
}

// AuthRegister creates a local identity from the registration details.
// Every call succeeds; there is no uniqueness or conflict check.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	email := cmd.StringArg("email")
	if username == "" || email == "" {
		return fmt.Errorf("%w: username and email", shared.ErrMissingArgument)
	}
	if r.auth == nil {
		return fmt.Errorf("%w: session store unavailable", shared.ErrSessionStorage)
	}

	if err := r.auth.Register(username, email, cmd.String("password"), cmd.String("full-name")); err != nil {
		return err
	}

	return r.writePlain("✓ Registered and logged in as %s\n", username)
}

// AuthLogout clears the stored session keys and the in-memory identity.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if r.auth == nil {
		return fmt.Errorf("%w: session store unavailable", shared.ErrSessionStorage)
	}

	if err := r.auth.Logout(); err != nil {
		return err
	}

	return r.writePlain("✓ Logged out\n")
}

// AuthStatus shows the current session identity and its stored keys.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.auth == nil {
		return fmt.Errorf("%w: session store unavailable", shared.ErrSessionStorage)
	}

	r.writePlainHeader("Session")

	user, ok := r.auth.CurrentUser()
	if !ok {
		return r.writePlain("Not logged in\n")
	}

	r.writePlain("Username:  %s\n", user.Username)
	r.writePlain("Email:     %s\n", user.Email)
	if user.FullName != "" {
		r.writePlain("Full name: %s\n", user.FullName)
	}

	if r.store != nil {
		if token, ok, _ := r.store.Get(session.KeyToken); ok {
			r.writePlain("Token:     %s (placeholder, never validated)\n", token)
		}
	}

	return nil
}
