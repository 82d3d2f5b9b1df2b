package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

// huhConfirmer asks before destructive commands. --yes skips the prompt.
type huhConfirmer struct {
	assumeYes bool
}

func (c huhConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.assumeYes {
		log.Debug().Str("prompt", prompt).Msg("[Confirm] Assumed yes")
		return true, nil
	}

	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).WithAccessible(!isatty.IsTerminal(os.Stdin.Fd()))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
