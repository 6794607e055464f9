// Package prompt asks the operator to confirm destructive commands.
package prompt

import (
	"context"
	stderrs "errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/olusolaa/azmgmt/internal/errors"
)

// HuhPrompter shows a yes/no form. When either end is not a terminal it
// answers false without reading input.
type HuhPrompter struct {
	in      io.Reader
	out     io.Writer
	isatty  func(io.Reader, io.Writer) bool
	noColor bool
}

func NewHuhPrompter(in io.Reader, out io.Writer, noColor bool) *HuhPrompter {
	return &HuhPrompter{in: in, out: out, isatty: interactive, noColor: noColor}
}

func (p *HuhPrompter) Confirm(ctx context.Context, title, description string) (bool, error) {
	if !p.isatty(p.in, p.out) {
		return false, nil
	}

	value := false
	field := huh.NewConfirm().
		Title(normalizeTitle(title)).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if description != "" {
		field = field.Description(p.headline(description))
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if stderrs.Is(err, huh.ErrUserAborted) {
			return false, errors.NewUserFacing(errors.CodePromptError, "confirmation prompt interrupted", "")
		}
		return false, errors.Wrap(err, errors.CodeInternal, "confirmation prompt failed")
	}
	return value, nil
}

func (p *HuhPrompter) headline(s string) string {
	if p.noColor {
		return s
	}
	return color.New(color.FgYellow).Sprint(s)
}

func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Continue?"
	}
	return title
}

func interactive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(inFile.Fd())) && term.IsTerminal(int(outFile.Fd()))
}
