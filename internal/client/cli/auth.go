package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/khushal/hello-grpc/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username, an email and a password and
// attempts to create a new account.
//
// On success it prints the assigned user id and returns nil. The password
// byte slice is wiped before returning. Any I/O or service error is
// returned unchanged.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	userID, err := a.api.Register(ctx, username, email, string(password))
	if err != nil {
		fmt.Println("Registration failed:", err.Error())
		return err
	}

	fmt.Println("Registered! User id:", userID)
	return nil
}

// Login prompts for a username or an email and a password and tries to
// authenticate. An identifier containing '@' is treated as an email.
//
// The password is wiped before returning. On success the logged-in
// identifier is remembered for the prompt.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if strings.Contains(identifier, "@") {
		err = a.api.LoginWithEmail(ctx, identifier, string(password))
	} else {
		err = a.api.LoginWithUsername(ctx, identifier, string(password))
	}

	if err != nil {
		fmt.Println("Login failed:", err.Error())
		return err
	}

	a.userName = identifier
	fmt.Println("Login successful")
	return nil
}
