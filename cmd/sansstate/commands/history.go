package commands

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/sansstate/internal/config"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/state"
	"git.home.luguber.info/inful/sansstate/internal/statestore"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Model      string `help:"Only list snapshots of this model (data or move)"`
	Instrument string `short:"i" help:"Only list snapshots of this instrument"`
	Limit      int    `short:"n" help:"Maximum number of snapshots" default:"20"`
}

func (h *HistoryCmd) Run(g *Global, _ *CLI) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snaps, err := store.List(g.Ctx, statestore.Filter{Model: h.Model, Instrument: h.Instrument, Limit: h.Limit})
	if err != nil {
		return err
	}
	if g.Config.Output.Format == config.OutputYAML {
		type entry struct {
			ID         string `yaml:"id"`
			Model      string `yaml:"model"`
			Instrument string `yaml:"instrument"`
			Run        string `yaml:"run"`
			CreatedAt  string `yaml:"created_at"`
		}
		out := make([]entry, 0, len(snaps))
		for _, s := range snaps {
			out = append(out, entry{s.ID, s.Model, s.Instrument, s.Run, s.CreatedAt.Format(time.RFC3339)})
		}
		return g.printYAML(out)
	}
	for _, s := range snaps {
		fmt.Fprintf(g.Out, "%s  %-5s %-7s %-8s %s\n", s.ID, s.Model, s.Instrument, s.Run, s.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	ID string `arg:"" help:"Snapshot ID"`
}

func (s *ShowCmd) Run(g *Global, _ *CLI) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snap, err := store.Get(g.Ctx, s.ID)
	if err != nil {
		return err
	}
	// A stored state must still rebuild and validate.
	var verr error
	switch snap.Model {
	case "move":
		_, verr = state.MoveFromPropertyMap(snap.Properties)
	case "data":
		_, verr = state.DataInfoFromPropertyMap(snap.Properties)
	}
	if verr != nil {
		return errors.StoreError(fmt.Sprintf("stored %s state no longer validates", snap.Model)).
			WithCause(verr).
			WithContext("state_id", snap.ID).
			Build()
	}
	return g.printProperties(snap.Properties)
}
