package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"github.com/milk9111/fireteam/config"
	"github.com/milk9111/fireteam/logging"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/sim"
)

var errUnknownFormat = errors.New("unknown report format")

type runOptions struct {
	scenario   string
	configDir  string
	format     string
	difficulty string
	ticks      int
	seed       int64
	copy       bool

	ticksSet bool
	seedSet  bool
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario and print a report",
	Long: `Run loads a scenario (a file on disk, or the name of a shipped one), plays its
scripted input for the requested number of ticks and prints a report.`,
	RunE: runScenario,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runOpts.scenario, "scenario", "s", "scenario.yaml", "scenario file or shipped scenario name")
	f.StringVar(&runOpts.configDir, "config", ".", "directory holding fireteam.yaml")
	f.StringVarP(&runOpts.format, "format", "f", "text", "report format: text or yaml")
	f.StringVarP(&runOpts.difficulty, "difficulty", "d", "", "override the scenario difficulty")
	f.IntVarP(&runOpts.ticks, "ticks", "n", 0, "ticks to run (default: the scenario's)")
	f.Int64Var(&runOpts.seed, "seed", 0, "override the scenario seed")
	f.BoolVar(&runOpts.copy, "copy", false, "copy the report to the clipboard")
	f.String("log-level", "", "log level (debug, info, warn, error)")
}

func runScenario(cmd *cobra.Command, args []string) error {
	opts := runOpts
	opts.ticksSet = cmd.Flags().Changed("ticks")
	opts.seedSet = cmd.Flags().Changed("seed")

	v := config.New()
	if err := v.BindPFlag("logLevel", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	settings, err := config.Load(v, opts.configDir)
	if err != nil {
		return err
	}
	log := logging.New(settings.LogLevel, cmd.ErrOrStderr())

	out, _, err := execute(opts, settings, log)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}
	if opts.copy {
		if err := copyReport(out); err != nil {
			return err
		}
		log.Info().Int("bytes", len(out)).Msg("report copied to clipboard")
	}
	return nil
}

// loadScenario prefers a file on disk, then the asset directory and
// finally the shipped scenarios.
func loadScenario(name string, assets prefabs.Dir) (prefabs.ScenarioSpec, error) {
	if _, err := os.Stat(name); err == nil {
		return prefabs.LoadSpecFrom[prefabs.ScenarioSpec](prefabs.Dir(filepath.Dir(name)), filepath.Base(name))
	}
	return prefabs.LoadSpecFrom[prefabs.ScenarioSpec](assets, name)
}

// execute runs the scenario and renders its report.
func execute(opts runOptions, settings config.Settings, log zerolog.Logger) ([]byte, sim.Report, error) {
	assets := prefabs.Dir(settings.AssetDir)
	sc, err := loadScenario(opts.scenario, assets)
	if err != nil {
		return nil, sim.Report{}, err
	}

	simOpts := sim.Options{
		Assets:     assets,
		Difficulty: settings.Difficulty,
		Seed:       settings.Seed,
		Log:        log,
	}
	if opts.difficulty != "" {
		simOpts.Difficulty = opts.difficulty
	}
	if opts.seedSet {
		simOpts.Seed = opts.seed
	}
	w, err := sim.New(sc, simOpts)
	if err != nil {
		return nil, sim.Report{}, err
	}

	ticks := sc.Ticks
	if opts.ticksSet {
		ticks = opts.ticks
	}
	if ticks <= 0 {
		ticks = settings.Ticks
	}
	log.Info().Str("scenario", sc.Name).Int("ticks", ticks).Float64("dt", settings.DT()).Msg("running")
	w.Run(ticks, settings.DT())

	report := w.Report()
	out, err := render(report, opts.format)
	return out, report, err
}

func render(r sim.Report, format string) ([]byte, error) {
	switch format {
	case "", "text":
		var buf bytes.Buffer
		if err := r.WriteText(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "yaml", "yml":
		return r.YAML()
	}
	return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
}

func copyReport(data []byte) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}
