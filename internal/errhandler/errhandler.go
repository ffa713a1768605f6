package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether the user aborted an interactive prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Message turns a service error into the line shown to the user.
func Message(err error) string {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		if verr.Field == "" {
			return capitalize(verr.Message)
		}
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Message)
	case errors.Is(err, service.ErrNotFound):
		return capitalize(rootNotFound(err).Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		return capitalize(auth.ErrUnauthenticated.Error())
	case errors.Is(err, service.ErrStorage):
		return "Storage failure, nothing was changed: " + err.Error()
	default:
		return capitalize(err.Error())
	}
}

// HandleError prints err and returns the process exit code.
func HandleError(err error) int {
	if err == nil {
		return 0
	}

	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	pterm.Error.Println(Message(err))
	return 1
}

// Exit prints err and terminates the process when it is non-nil.
func Exit(err error) {
	if code := HandleError(err); code != 0 {
		os.Exit(code)
	}
}

func rootNotFound(err error) error {
	for _, nf := range []error{service.ErrBoxNotFound, service.ErrTransactionNotFound, service.ErrTemplateNotFound} {
		if errors.Is(err, nf) {
			return nf
		}
	}
	return err
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
