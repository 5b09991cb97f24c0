package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/harrison/hsutools/internal/i18n"
)

// errAborted is returned by prompts the user dismissed with ctrl+c or esc.
var errAborted = errors.New("prompt aborted")

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// huhConfirm shows a yes/no prompt that defaults to yes.
// An aborted prompt counts as "no".
func huhConfirm(title string, lang i18n.Lang) (bool, error) {
	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(lang.Tr("common.yes", nil)).
				Negative(lang.Tr("common.no", nil)).
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// huhInput asks for a single line of text.
func huhInput(title string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&value),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errAborted
		}
		return "", err
	}
	return value, nil
}
