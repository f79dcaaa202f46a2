// Package commands implements the sansstate command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sansstate/internal/config"
	"git.home.luguber.info/inful/sansstate/internal/director"
	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/metrics"
	"git.home.luguber.info/inful/sansstate/internal/settings"
	"git.home.luguber.info/inful/sansstate/internal/statestore"
	"git.home.luguber.info/inful/sansstate/internal/typed"
	"git.home.luguber.info/inful/sansstate/internal/userfile"
)

// Global carries the state shared by every subcommand.
type Global struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Config   *config.Config
	Recorder metrics.Recorder
	Out      io.Writer

	// OpenStore overrides how the snapshot store is opened.
	OpenStore func(path string) (statestore.Store, error)
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sansstate.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Slices  SlicesCmd  `cmd:"" help:"Parse an event-slice string into time ranges"`
	Rebin   RebinCmd   `cmd:"" help:"Expand a min,step,max rebin triple into bins"`
	Build   BuildCmd   `cmd:"" help:"Build the move state of a run from a user file"`
	Name    NameCmd    `cmd:"" help:"Print the reduced output names of a run"`
	History HistoryCmd `cmd:"" help:"List stored state snapshots"`
	Show    ShowCmd    `cmd:"" help:"Print a stored state snapshot"`
	Watch   WatchCmd   `cmd:"" help:"Rebuild a run whenever its user file changes"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// LoadConfig reads path, falling back to defaults when the file does not
// exist.
func LoadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// NewLogger builds the slog logger described by cfg. verbose forces debug.
func NewLogger(cfg *config.Config, verbose bool, w io.Writer) *slog.Logger {
	level := cfg.Logging.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Logging.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (g *Global) director() *director.Director {
	return director.New(director.WithRecorder(g.Recorder), director.WithLogger(g.Logger))
}

func (g *Global) openStore() (statestore.Store, error) {
	if g.OpenStore != nil {
		return g.OpenStore(g.Config.Store.Path)
	}
	if err := os.MkdirAll(filepath.Dir(g.Config.Store.Path), 0o750); err != nil {
		return nil, errors.WrapError(err, errors.CategoryStore, "failed to create store directory").
			WithContext("path", g.Config.Store.Path).
			Build()
	}
	return statestore.NewSQLiteStore(g.Config.Store.Path, statestore.WithRecorder(g.Recorder))
}

// RunInput names the run a command works on.
type RunInput struct {
	UserFile      string `short:"u" name:"user-file" help:"YAML user file (defaults to the configured one)"`
	Facility      string `short:"f" help:"Facility (defaults to the configured one)"`
	Period        int    `short:"p" help:"Sample scatter period, 0 for all periods, -1 for the configured one" default:"-1"`
	SampleScatter string `arg:"" name:"run" help:"Sample scatter run, e.g. SANS2D00022048"`
}

func (in *RunInput) resolve(g *Global) (userFile string, facility enums.Facility, period int, err error) {
	userFile = in.UserFile
	if userFile == "" {
		userFile = g.Config.Defaults.UserFile
	}
	raw := in.Facility
	if raw == "" {
		raw = g.Config.Facility
	}
	facility, err = enums.ParseFacility(raw)
	if err != nil {
		return "", "", 0, err
	}
	period = g.Config.Defaults.Period
	if in.Period >= 0 {
		period = in.Period
	}
	return userFile, facility, period, nil
}

// reduce loads the user file and builds the run's state.
func (in *RunInput) reduce(g *Global) (*director.Reduction, error) {
	userFile, facility, period, err := in.resolve(g)
	if err != nil {
		return nil, err
	}
	var model *settings.Model
	if userFile != "" {
		dict, err := userfile.Load(g.Ctx, userFile)
		if err != nil {
			return nil, err
		}
		model = settings.NewModel(dict)
	}
	return g.director().Reduce(model, facility, in.SampleScatter, period)
}

// printProperties writes a property map in the configured format.
func (g *Global) printProperties(props typed.PropertyMap) error {
	if g.Config.Output.Format == config.OutputYAML {
		return g.printYAML(map[string]any(props))
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(g.Out, "%s = %v\n", k, props[k])
	}
	return nil
}

func (g *Global) printYAML(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to render output").Build()
	}
	_, err = g.Out.Write(out)
	return err
}
