package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/sansstate/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory for the generated config file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if i.Output != "" {
		path = filepath.Join(i.Output, "sansstate.yaml")
	}
	fmt.Fprintf(g.Out, "Writing configuration to %s\n", path)
	return config.Init(path, i.Force)
}
