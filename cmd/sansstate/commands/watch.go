package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/logfields"
	"git.home.luguber.info/inful/sansstate/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	RunInput `embed:""`
}

func (w *WatchCmd) Run(g *Global, _ *CLI) error {
	userFile, _, _, err := w.resolve(g)
	if err != nil {
		return err
	}
	if userFile == "" {
		return errors.ConfigError("watch needs a user file").UserAction().Build()
	}

	fw, err := watch.NewFileWatcher(userFile, g.Config.Watch.Debounce.Std(), g.Logger)
	if err != nil {
		return err
	}

	reload := func(context.Context) error {
		r, err := w.reduce(g)
		if err != nil {
			return err
		}
		names, err := r.OutputNames()
		if err != nil {
			// No wavelength range yet; the state itself is valid.
			g.Logger.Info("Rebuilt move state", logfields.Run(w.SampleScatter), logfields.Instrument(r.Move.Instrument().String()))
			return nil
		}
		for _, n := range names {
			fmt.Fprintln(g.Out, n.Name)
		}
		return nil
	}
	if err := reload(g.Ctx); err != nil {
		g.Logger.Error("Initial build failed", logfields.Error(err))
	}
	return fw.Run(g.Ctx, reload)
}
