package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/ultraupload/ultraupload/internal/client/models"
	"github.com/ultraupload/ultraupload/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	msgFillAllFields = "Por favor, completa todos los campos"
	msgBadDate       = "Fecha de nacimiento inválida (AAAA-MM-DD)"
)

var errInput = errors.New("invalid input")

// Login prompts for email and password and signs in. Empty fields are
// rejected before anything is sent.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		a.println(msgFillAllFields)
		return errInput
	}

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		return a.fail(err)
	}

	a.profile.Load(ctx)
	a.println("Login successful")
	return nil
}

// Register prompts for every sign-up field and creates the account.
func (a *App) Register(ctx context.Context) error {
	ask := func(prompt string) (string, error) {
		return getSimpleText(a.reader, prompt, a.out)
	}

	var req models.RegistrationRequest
	var err error

	if req.Email, err = ask("Enter email"); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if req.FirstName, err = ask("Enter first name"); err != nil {
		return err
	}
	if req.LastName, err = ask("Enter last name"); err != nil {
		return err
	}
	if req.Username, err = ask("Enter username"); err != nil {
		return err
	}
	dob, err := ask("Enter date of birth (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	if req.NationalID, err = ask("Enter national ID"); err != nil {
		return err
	}

	if strings.TrimSpace(dob) != "" {
		if req.DateOfBirth, err = models.ParseDate(strings.TrimSpace(dob)); err != nil {
			a.println(msgBadDate)
			return errInput
		}
	}
	if err := req.Validate(); err != nil {
		a.println(msgFillAllFields)
		return errInput
	}

	if err := a.session.Register(ctx, req); err != nil {
		return a.fail(err)
	}

	a.profile.Load(ctx)
	a.println("Success!")
	return nil
}

// Logout ends the session and forgets the local profile.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return a.fail(err)
	}
	a.profile.Clear(ctx)
	a.println("Logged out")
	return nil
}

// Whoami prints the signed-in user.
func (a *App) Whoami(_ context.Context) error {
	u, ok := a.session.User()
	if !ok {
		a.println("Not logged in")
		return nil
	}
	a.println("Name:    ", u.DisplayName())
	a.println("Username:", u.Username)
	a.println("Email:   ", u.Email)
	a.println("Avatar:  ", u.AvatarURL)
	if !u.DateOfBirth.IsZero() {
		a.println("Born:    ", u.DateOfBirth.String())
	}
	return nil
}
