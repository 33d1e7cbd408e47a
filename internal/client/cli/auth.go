package cli

import (
	"context"
	"fmt"

	"github.com/asemenova/toolshare/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, nickname and password and creates a new
// account. On success the user is signed in right away with the same
// credentials, so registration lands in a fully established session. The
// password bytes are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	nickname, err := getSimpleText(a.reader, "Nickname (shown to other members)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	_, err = a.session.Register(ctx, api.Registration{
		Username: userName,
		Password: string(password),
		Nickname: nickname,
	})
	if err != nil {
		if apiErr := api.AsError(err); apiErr != nil {
			fmt.Fprintln(a.out, "Registration failed:", apiErr.Message)
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Account created, signing in...")

	if err := a.session.Login(ctx, api.Credentials{Username: userName, Password: string(password)}); err != nil {
		if apiErr := api.AsError(err); apiErr != nil {
			fmt.Fprintln(a.out, "Sign-in failed:", apiErr.Message)
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Welcome,", userName)
	return nil
}

// Login prompts for credentials and authenticates against the server. A
// rejected credential is reported and leaves any existing session untouched;
// transport failures are returned to the caller.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	err = a.session.Login(ctx, api.Credentials{Username: userName, Password: string(password)})
	if err != nil {
		if apiErr := api.AsError(err); apiErr != nil {
			fmt.Fprintln(a.out, "Login failed:", apiErr.Message)
			return nil
		}
		return err
	}

	if !a.session.IsLoggedIn() {
		// login was accepted but the profile fetch failed; the session
		// dropped the credential rather than keep a half-built identity
		fmt.Fprintln(a.out, "Signed in, but the profile could not be loaded. Please try again.")
		return nil
	}

	fmt.Fprintln(a.out, "Welcome back,", userName)
	return nil
}

// Logout drops the server credential and the cached profile.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
