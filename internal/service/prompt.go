package service

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// Prompter defines the interface for interactive confirmation of values.

type Prompter interface {
	// Input asks for a value, offering def as the prefilled default.
	Input(label, def string) (string, error)
}

// Interactive reports whether stdin is attached to a terminal. Editor flows
// and prompts are skipped when it is not.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// surveyPrompter is the terminal implementation of Prompter.
type surveyPrompter struct{}

// NewPrompter creates a terminal-backed Prompter.
func NewPrompter() Prompter {
	return &surveyPrompter{}
}

func (p *surveyPrompter) Input(label, def string) (string, error) {
	answer := def
	prompt := &survey.Input{
		Message: label,
		Default: def,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}
