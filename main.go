package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/fireteam/config"
	"github.com/milk9111/fireteam/logging"
)

func main() {
	configDir := flag.String("config", ".", "directory holding fireteam.yaml")
	scenario := flag.String("scenario", "scenario.yaml", "scenario asset to play")
	debug := flag.Bool("debug", false, "enable debug logging and overlays")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	v := config.New()
	if *debug {
		v.Set("logLevel", "debug")
	}
	settings, err := config.Load(v, *configDir)
	log := logging.New(settings.LogLevel, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("fireteam")
	ebiten.SetTPS(settings.TickRate)

	game, err := NewGame(*scenario, settings, *debug, log)
	if err != nil {
		log.Fatal().Err(err).Str("scenario", *scenario).Msg("start")
	}
	defer game.Close()

	// Look input reads relative cursor motion.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
