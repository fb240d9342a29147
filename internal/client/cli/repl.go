package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface of the sign-in prompt.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
}

// runREPL is the sign-in prompt shown while nobody is signed in.
//
//	help          show available commands
//	register      create an account and sign in
//	login         sign in
//	exit | quit   leave the program
//
// It returns true as soon as a command leaves a user signed in, and false
// when the user exits or input ends. Handler errors are reported by the
// handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) bool {
	printlnFn("Welcome to Qwik2Do (type 'help' for commands)")
	for {
		printlnFn(fmt.Sprintf("qwik2do %s> ", statusFn()))
		if !scanner.Scan() {
			return false
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: register, login, exit")

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return false

		default:
			printlnFn("Unknown command:", cmd)
		}

		if a.isLoggedIn() {
			return true
		}
	}
}
