package commands

import (
	"fmt"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/sansstate/internal/config"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/metrics"
	"git.home.luguber.info/inful/sansstate/internal/ranges"
)

type rangeOut struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// SlicesCmd implements the 'slices' command.
type SlicesCmd struct {
	Value string `arg:"" help:"Event-slice string, e.g. \"0:30:120,>300\""`
}

func (s *SlicesCmd) Run(g *Global, _ *CLI) error {
	list, err := ranges.Parse(s.Value)
	g.Recorder.IncParseResult("event_slices", metrics.Result(err))
	if err != nil {
		return err
	}
	if g.Config.Output.Format == config.OutputYAML {
		out := make([]rangeOut, 0, len(list))
		for _, r := range list {
			out = append(out, rangeOut(r))
		}
		return g.printYAML(out)
	}
	if len(list) == 0 {
		fmt.Fprintln(g.Out, "no ranges")
		return nil
	}
	for _, r := range list {
		fmt.Fprintln(g.Out, r.String())
	}
	return nil
}

// RebinCmd implements the 'rebin' command.
type RebinCmd struct {
	Params string `arg:"" help:"min,step,max; a negative step selects logarithmic bins"`
}

func (r *RebinCmd) Run(g *Global, _ *CLI) error {
	params, err := parseTriple(r.Params)
	if err == nil {
		var lower, upper []float64
		lower, upper, err = ranges.RebinArrayRanges(params)
		if err == nil {
			g.Recorder.IncParseResult("rebin", metrics.ResultSuccess)
			return r.print(g, lower, upper)
		}
	}
	g.Recorder.IncParseResult("rebin", metrics.ResultFailure)
	return err
}

func (r *RebinCmd) print(g *Global, lower, upper []float64) error {
	if g.Config.Output.Format == config.OutputYAML {
		out := make([]rangeOut, len(lower))
		for i := range lower {
			out[i] = rangeOut{Lower: lower[i], Upper: upper[i]}
		}
		return g.printYAML(out)
	}
	for i := range lower {
		fmt.Fprintln(g.Out, ranges.Range{Lower: lower[i], Upper: upper[i]}.String())
	}
	return nil
}

func parseTriple(raw string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return out, errors.ParseError("rebin parameters must be min,step,max").
			WithContext("element", raw).
			Build()
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, errors.ParseError(fmt.Sprintf("invalid rebin parameter %q", p)).
				WithContext("element", raw).
				Build()
		}
		out[i] = v
	}
	return out, nil
}
