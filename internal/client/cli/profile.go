package cli

import (
	"context"
	"fmt"
)

// Profile fetches and prints the logged-in user's profile.
func (a *App) Profile(ctx context.Context) error {

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	profile, err := a.api.GetProfile(ctx)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}

	fmt.Println("User id:   ", profile.UserID)
	fmt.Println("Username:  ", profile.Username)
	fmt.Println("Email:     ", profile.Email)
	fmt.Println("Created at:", profile.CreatedAt)
	if profile.LastLogin != "" {
		fmt.Println("Last login:", profile.LastLogin)
	}

	return nil
}

// Ping checks server reachability.
func (a *App) Ping(ctx context.Context) error {

	if err := a.api.Ping(ctx); err != nil {
		fmt.Println("Server unreachable:", err.Error())
		return err
	}

	fmt.Println("OK")
	return nil
}
