package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/dmitrijs2005/qwik2do/internal/common"
)

const (
	signInFailed = "Failed to sign in. Please check your email and password."
	signUpFailed = "Failed to sign up. Please check your email and password."
	missingInput = "Email and password are required."
)

// Prompt seams, replaced in tests.
var (
	askLine     = promptLine
	askPassword = promptPassword
)

func (a *App) getStatus() string {
	s := ""
	if id := a.session.Identity(); id != nil {
		s = id.Email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	s = strings.TrimSpace(s)
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func (a *App) credentials() (string, string, error) {
	email, err := askLine(a.reader, "Email", os.Stdout)
	if err != nil {
		if errors.Is(err, errEmptyInput) {
			printlnFn(missingInput)
		}
		return "", "", err
	}

	password, err := askPassword(os.Stdout)
	if err != nil {
		if errors.Is(err, errEmptyInput) {
			printlnFn(missingInput)
		}
		return "", "", err
	}
	defer common.WipeByteArray(password)

	return email, string(password), nil
}

// Login prompts for credentials and signs in. A failure of any kind is
// reported with the same message.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	if err := a.session.SignIn(ctx, email, password); err != nil {
		printlnFn(signInFailed)
		return err
	}

	printlnFn("Welcome, " + email + "!")
	return nil
}

// Register creates an account and signs in with it. Like Login, every
// failure is reported with the same message.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	if err := a.session.SignUp(ctx, email, password); err != nil {
		a.logger.Warn(ctx, "sign up failed", "email", email, "error", err)
		printlnFn(signUpFailed)
		return err
	}

	printlnFn("Welcome, " + email + "!")
	return nil
}
