package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// errEmptyInput is returned when the user just presses enter.
var errEmptyInput = errors.New("empty input")

// readPassword is swapped out in tests so they never touch the terminal.
var readPassword = term.ReadPassword

// promptLine asks for one line of input and returns it trimmed. A final
// line without a newline still counts.
func promptLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "%s: ", prompt)

	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", errEmptyInput
	}
	return line, nil
}

// promptPassword reads a password from the terminal without echo. The caller
// wipes the returned slice.
func promptPassword(w io.Writer) ([]byte, error) {
	fmt.Fprint(w, "Password: ")

	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, errEmptyInput
	}
	return pw, nil
}
