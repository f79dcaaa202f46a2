package commands

import (
	"fmt"
	"strconv"

	"git.home.luguber.info/inful/sansstate/internal/director"
	"git.home.luguber.info/inful/sansstate/internal/logfields"
	"git.home.luguber.info/inful/sansstate/internal/statestore"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	RunInput `embed:""`
	Save bool `help:"Store the built data and move state as snapshots"`
}

func (b *BuildCmd) Run(g *Global, _ *CLI) error {
	r, err := b.reduce(g)
	if err != nil {
		return err
	}
	if err := g.printProperties(r.Move.ToPropertyMap()); err != nil {
		return err
	}
	if !b.Save {
		return nil
	}
	ids, err := saveReduction(g, r)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintf(g.Out, "saved %s\n", id)
	}
	return nil
}

// saveReduction stores the data and move state of r and returns their IDs.
func saveReduction(g *Global, r *director.Reduction) ([]string, error) {
	store, err := g.openStore()
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	inst := r.Move.Instrument().String()
	run := strconv.Itoa(r.Data.RunNumber())
	snaps := []statestore.Snapshot{
		{Model: "data", Instrument: inst, Run: run, Properties: r.Data.ToPropertyMap()},
		{Model: "move", Instrument: inst, Run: run, Properties: r.Move.ToPropertyMap()},
	}
	ids := make([]string, 0, len(snaps))
	for _, s := range snaps {
		id, err := store.Save(g.Ctx, s)
		if err != nil {
			return nil, err
		}
		g.Logger.Info("Saved state snapshot", logfields.StateID(id), logfields.Model(s.Model), logfields.Run(run))
		ids = append(ids, id)
	}
	return ids, nil
}

// NameCmd implements the 'name' command.
type NameCmd struct {
	RunInput `embed:""`
	Base bool `help:"Print base names instead of full names"`
}

func (n *NameCmd) Run(g *Global, _ *CLI) error {
	r, err := n.reduce(g)
	if err != nil {
		return err
	}
	names, err := r.OutputNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		if n.Base {
			fmt.Fprintln(g.Out, name.Base)
			continue
		}
		fmt.Fprintln(g.Out, name.Name)
	}
	return nil
}
