// Package console implements the interactive terminal flow: pick a folder,
// confirm, rename, report.
package console

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when the flow needs an answer from the user
// but stdin is not a terminal.
var ErrNotInteractive = errors.New("console: input required but stdin is not a terminal (pass a directory and --yes)")

// Prompter abstracts the two questions the flow asks so tests can answer
// them without a terminal.
type Prompter interface {
	// InputDirectory asks for a folder. An empty answer means the user
	// chose nothing.
	InputDirectory(label string) (string, error)

	// Confirm asks a yes/no question. Declining is not an error.
	Confirm(label string) (bool, error)
}

// PrompterAdapter implements Prompter using promptui.
type PrompterAdapter struct{}

// NewPrompterAdapter creates a promptui-backed prompter.
func NewPrompterAdapter() *PrompterAdapter {
	return &PrompterAdapter{}
}

// InputDirectory implements Prompter. Ctrl+C or Ctrl+D count as no answer.
func (p *PrompterAdapter) InputDirectory(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}
	dir, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", nil
	}
	return dir, err
}

// Confirm implements Prompter.
func (p *PrompterAdapter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort), errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, nil
	default:
		return false, err
	}
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
