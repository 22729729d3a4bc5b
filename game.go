package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"

	"github.com/milk9111/fireteam/common"
	"github.com/milk9111/fireteam/config"
	"github.com/milk9111/fireteam/event"
	"github.com/milk9111/fireteam/input/ebitensrc"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	// pixels per metre on the overhead map
	mapScale = 16.0
)

type Game struct {
	frames int

	world    *sim.World
	settings config.Settings
	watcher  *prefabs.Watcher
	log      zerolog.Logger
	debug    bool
	paused   bool
	pause    *pauseMenu
	lastHit  int
}

func NewGame(scenario string, settings config.Settings, debug bool, log zerolog.Logger) (*Game, error) {
	assets := prefabs.Dir(settings.AssetDir)
	sc, err := prefabs.LoadSpecFrom[prefabs.ScenarioSpec](assets, scenario)
	if err != nil {
		return nil, err
	}
	w, err := sim.New(sc, sim.Options{
		Source:     ebitensrc.New(),
		Assets:     assets,
		Difficulty: settings.Difficulty,
		Seed:       settings.Seed,
		Log:        log,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:    w,
		settings: settings,
		log:      log,
		debug:    debug,
		pause:    newPauseMenu(),
		lastHit:  -1,
	}
	if settings.HotReload {
		g.watcher = watchAssets(settings.AssetDir, log)
	}
	return g, nil
}

// watchAssets watches the asset directory and its scripts folder. A
// missing directory only disables hot reload.
func watchAssets(dir string, log zerolog.Logger) *prefabs.Watcher {
	if _, err := os.Stat(dir); err != nil {
		log.Debug().Str("dir", dir).Msg("no asset directory on disk; hot reload off")
		return nil
	}
	dirs := []string{dir}
	if scripts := filepath.Join(dir, "scripts"); dirExists(scripts) {
		dirs = append(dirs, scripts)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("hot reload unavailable")
		return nil
	}
	log.Info().Strs("dirs", dirs).Msg("watching assets")
	return w
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
	}
	if g.paused {
		if g.pause.Update() == pauseQuit {
			return ebiten.Termination
		} else if g.pause.resumed {
			g.pause.resumed = false
			g.paused = false
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
		return nil
	}

	if g.watcher != nil {
		g.world.PollReload(g.watcher)
	}
	g.world.Update(g.settings.DT())

	for _, ev := range g.world.Events() {
		if ev.Type == event.PlayerHit {
			g.lastHit = g.world.Tick()
		}
	}
	if g.world.Health() <= 0 {
		g.log.Info().Int("tick", g.world.Tick()).Msg("player down")
		g.paused = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	g.drawArena(screen)
	g.drawActors(screen)
	g.drawBanner(screen)
	g.drawHUD(screen)

	if g.paused {
		g.pause.Draw(screen)
	}
}

// toScreen maps a ground point onto the overhead map with +Z up.
func (g *Game) toScreen(x, z float64) (float32, float32) {
	a := g.world.Scenario.Arena
	w := float64(a.Width) * a.CellSize * mapScale
	d := float64(a.Depth) * a.CellSize * mapScale
	ox := (baseWidth - w) / 2
	oy := (baseHeight - d) / 2
	sx := ox + (x-a.Origin[0])*mapScale
	sy := oy + d - (z-a.Origin[2])*mapScale
	return float32(sx), float32(sy)
}

func (g *Game) drawArena(screen *ebiten.Image) {
	a := g.world.Scenario.Arena
	x0, y0 := g.toScreen(a.Origin[0], a.Origin[2]+float64(a.Depth)*a.CellSize)
	size := float32(mapScale * a.CellSize)
	vector.FillRect(screen, x0, y0, size*float32(a.Width), size*float32(a.Depth), colornames.Dimgray, false)

	for _, box := range a.Obstacles {
		x, y := g.toScreen(box.Min[0], box.Max[2])
		w := float32((box.Max[0] - box.Min[0]) * mapScale)
		h := float32((box.Max[2] - box.Min[2]) * mapScale)
		vector.FillRect(screen, x, y, w, h, colornames.Saddlebrown, false)
		vector.StrokeRect(screen, x, y, w, h, 1, colornames.Black, false)
	}
}

func (g *Game) drawActors(screen *ebiten.Image) {
	for _, e := range g.world.Enemies {
		p := e.Nav.Position()
		x, y := g.toScreen(p[0], p[2])
		c := color.Color(colornames.Crimson)
		if e.Dead {
			c = colornames.Gray
		}
		vector.FillCircle(screen, x, y, 6, c, true)
		if !e.Dead {
			f := common.ForwardOf(e.Agent.Rotation())
			fx, fy := g.toScreen(p[0]+f[0], p[2]+f[2])
			vector.StrokeLine(screen, x, y, fx, fy, 2, colornames.Orange, true)
			if g.debug {
				ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %s %.0f", e.Name(), e.Agent.State(), e.Health), int(x)+8, int(y)-8)
			}
		}
	}

	p := g.world.Player.Position()
	x, y := g.toScreen(p[0], p[2])
	c := color.Color(colornames.Lightskyblue)
	if g.lastHit >= 0 && g.world.Tick()-g.lastHit < 10 {
		c = colornames.Red
	}
	vector.FillCircle(screen, x, y, 7, c, true)

	aim := g.world.Player.Aim()
	reach := 3.0
	if g.world.Weapon.Aiming() {
		reach = 8
	}
	ax, ay := g.toScreen(p[0]+aim[0]*reach, p[2]+aim[2]*reach)
	vector.StrokeLine(screen, x, y, ax, ay, 1.5, colornames.Yellow, true)
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	img := g.world.BannerImage.A
	txt := g.world.BannerText.A
	if img <= 0 && txt <= 0 {
		return
	}
	band := color.NRGBA{A: uint8(math.Round(180 * img))}
	vector.FillRect(screen, 0, baseHeight/2-40, baseWidth, 80, band, false)
	drawCentered(screen, g.world.Banner.Name, baseHeight/2, txt)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ammo := g.world.Weapon.Ammo()
	status := ""
	if g.world.Weapon.Reloading() {
		status = " reloading"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f  tick %d\nhealth %.0f\n%s [%s] %d/%d%s\nhostiles %d",
		ebiten.ActualFPS(), g.world.Tick(),
		g.world.Health(),
		g.world.Weapon.Name(), g.world.Weapon.Mode(), ammo.Current, ammo.Reserve, status,
		g.world.Alive(),
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
