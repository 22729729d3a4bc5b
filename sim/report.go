package sim

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/fireteam/enemy"
	"github.com/milk9111/fireteam/event"
)

type tally struct {
	hits       int
	kills      int
	dealt      float64
	taken      float64
	events     map[string]int
	enemyShots map[string]int
}

func newTally() tally {
	return tally{events: make(map[string]int), enemyShots: make(map[string]int)}
}

func (t *tally) add(ev event.Event) {
	t.events[ev.Type]++
	if s, ok := ev.Data.(enemy.Shot); ok && ev.Type == event.EnemyShot {
		t.enemyShots[s.Enemy]++
	}
}

type EnemyReport struct {
	Name     string     `yaml:"name"`
	State    string     `yaml:"state"`
	Position [3]float64 `yaml:"position,flow"`
	Health   float64    `yaml:"health"`
	Dead     bool       `yaml:"dead"`
	Shots    int        `yaml:"shots"`
}

// Report summarises a run.
type Report struct {
	Scenario    string         `yaml:"scenario"`
	Difficulty  string         `yaml:"difficulty"`
	Seed        int64          `yaml:"seed"`
	Ticks       int            `yaml:"ticks"`
	Time        float64        `yaml:"time"`
	Health      float64        `yaml:"health"`
	Position    [3]float64     `yaml:"position,flow"`
	Weapon      string         `yaml:"weapon"`
	Mode        string         `yaml:"mode"`
	Ammo        int            `yaml:"ammo"`
	Reserve     int            `yaml:"reserve"`
	Hits        int            `yaml:"hits"`
	Kills       int            `yaml:"kills"`
	DamageDealt float64        `yaml:"damage_dealt"`
	DamageTaken float64        `yaml:"damage_taken"`
	Events      map[string]int `yaml:"events"`
	Enemies     []EnemyReport  `yaml:"enemies"`
}

func (w *World) Report() Report {
	ammo := w.Weapon.Ammo()
	r := Report{
		Scenario:    w.Scenario.Name,
		Difficulty:  w.difficulty.String(),
		Seed:        w.seed,
		Ticks:       w.tick,
		Time:        w.now,
		Health:      w.health,
		Position:    w.Player.Position(),
		Weapon:      w.Weapon.Name(),
		Mode:        w.Weapon.Mode().String(),
		Ammo:        ammo.Current,
		Reserve:     ammo.Reserve,
		Hits:        w.tally.hits,
		Kills:       w.tally.kills,
		DamageDealt: w.tally.dealt,
		DamageTaken: w.tally.taken,
		Events:      make(map[string]int, len(w.tally.events)),
	}
	for k, v := range w.tally.events {
		r.Events[k] = v
	}
	for _, e := range w.Enemies {
		r.Enemies = append(r.Enemies, EnemyReport{
			Name:     e.Name(),
			State:    e.Agent.State(),
			Position: e.Nav.Position(),
			Health:   e.Health,
			Dead:     e.Dead,
			Shots:    w.tally.enemyShots[e.Name()],
		})
	}
	return r
}

func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteText prints the report as aligned columns.
func (r Report) WriteText(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "scenario\t%s\t%s seed %d\n", r.Scenario, r.Difficulty, r.Seed)
	fmt.Fprintf(tw, "time\t%.2fs\t%d ticks\n", r.Time, r.Ticks)
	fmt.Fprintf(tw, "player\thealth %.0f\tat %.2f %.2f %.2f\n", r.Health, r.Position[0], r.Position[1], r.Position[2])
	fmt.Fprintf(tw, "weapon\t%s %s\t%d/%d\n", r.Weapon, r.Mode, r.Ammo, r.Reserve)
	fmt.Fprintf(tw, "combat\thits %d kills %d\tdealt %.1f taken %.1f\n", r.Hits, r.Kills, r.DamageDealt, r.DamageTaken)

	types := make([]string, 0, len(r.Events))
	for k := range r.Events {
		types = append(types, k)
	}
	sort.Strings(types)
	for _, k := range types {
		fmt.Fprintf(tw, "event\t%s\t%d\n", k, r.Events[k])
	}
	for _, e := range r.Enemies {
		status := e.State
		if e.Dead {
			status = "down"
		}
		fmt.Fprintf(tw, "enemy\t%s\t%s health %.0f shots %d\n", e.Name, status, e.Health, e.Shots)
	}
	return tw.Flush()
}
