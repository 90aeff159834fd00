package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mpetrenko/authcore/internal/client/client"
	"github.com/mpetrenko/authcore/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email, display name and password and
// attempts to create a new account. On success the returned session token
// is cached by the API client, so the user is immediately logged in.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.apiClient.Register(reqCtx, email, string(password), name); err != nil {
		if errors.Is(err, client.ErrEmailTaken) {
			log.Printf("Registration failed: %s is already registered", email)
		} else {
			log.Printf("Registration failed: %s", err.Error())
		}
		return err
	}

	a.userEmail = email
	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On success the session token is cached by the API client and the
// connectivity Mode switches to online.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.apiClient.Login(reqCtx, email, string(password)); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
			a.setMode(ModeOffline)
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.userEmail = email
	a.setMode(ModeOnline)
	log.Printf("Login successful")
	return nil
}

// Me fetches and prints the authenticated user's profile. An expired
// session drops the user back to the logged-out state.
func (a *App) Me(ctx context.Context) error {
	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	profile, err := a.apiClient.CurrentUser(reqCtx)
	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			a.userEmail = ""
			log.Printf("Session expired, please log in again")
		} else {
			log.Printf("Cannot fetch profile: %s", err.Error())
		}
		return err
	}

	fmt.Printf("ID:    %s\nEmail: %s\nName:  %s\n", profile.ID, profile.Email, profile.Name)
	return nil
}

// Logout discards the cached session token and clears the user identity.
func (a *App) Logout(ctx context.Context) error {
	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	err := a.apiClient.Logout(reqCtx)
	a.userEmail = ""
	if err != nil {
		// the local session is gone either way
		log.Printf("Logout: %s", err.Error())
		return err
	}

	fmt.Println("Logged out")
	return nil
}

// Ping probes the server and reports reachability.
func (a *App) Ping(ctx context.Context) error {
	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.apiClient.Ping(reqCtx); err != nil {
		a.setMode(ModeOffline)
		log.Printf("Server unavailable: %s", err.Error())
		return err
	}

	a.setMode(ModeOnline)
	fmt.Println("Server is up")
	return nil
}
