package main

import (
	"errors"
	"fmt"

	"findr/cmd/findr/i18n"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

var errNoGames = errors.New("no games configured")

func newFindCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find",
		Short: "Find an open game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.find()
		},
	}
}

func (a *app) find() error {
	g, err := pickGame(a.cfg.Games, a.copy)
	if err != nil {
		if errors.Is(err, errNoGames) {
			return fmt.Errorf("%w: add games to %s or run `%s config init`", err, a.configPath, appName)
		}
		return err
	}
	a.log.Info("game selected", "game", g.Name, "host", g.Host)
	fmt.Fprintln(a.stdout, g.Name)
	return nil
}

// pickGame lets the user select a game with the fuzzy finder.
func pickGame(games []Game, c i18n.Copy) (Game, error) {
	if len(games) == 0 {
		return Game{}, errNoGames
	}
	idx, err := fuzzyfinder.Find(
		games,
		func(i int) string {
			return games[i].Name
		},
		fuzzyfinder.WithPromptString(c.FindPrompt),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return gamePreview(games[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return Game{}, errAborted
		}
		return Game{}, err
	}
	return games[idx], nil
}

func gamePreview(g Game) string {
	host := g.Host
	if host == "" {
		host = "?"
	}
	return fmt.Sprintf("%s\n\nhost:    %s\nplayers: %d", g.Name, host, g.Players)
}
