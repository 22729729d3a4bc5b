package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fireteam/config"
)

func settings(t *testing.T) config.Settings {
	t.Helper()
	s, err := config.Load(config.New(), "")
	require.NoError(t, err)
	return s
}

func TestExecuteShippedScenario(t *testing.T) {
	out, r, err := execute(runOptions{
		scenario: "scenario.yaml",
		format:   "yaml",
		ticks:    120,
		ticksSet: true,
	}, settings(t), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 120, r.Ticks)
	assert.Equal(t, "courtyard", r.Scenario)
	assert.Contains(t, string(out), "scenario: courtyard")
	assert.Contains(t, string(out), "name: alpha")
}

func TestExecuteScenarioFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duel.yaml")
	body := []byte(`name: duel
ticks: 30
seed: 9
arena: { width: 20, depth: 20, cell_size: 1, origin: [-10, 0, -10] }
enemies:
  - { name: lone, position: [0, 0, 8], yaw: 180 }
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))

	out, r, err := execute(runOptions{scenario: path, difficulty: "easy"}, settings(t), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 30, r.Ticks, "scenario ticks apply without --ticks")
	assert.Equal(t, "easy", r.Difficulty)
	assert.Equal(t, int64(9), r.Seed)
	assert.Contains(t, string(out), "lone")
}

func TestExecuteSettingsBehindFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: duel
ticks: 5
seed: 9
difficulty: normal
arena: { width: 20, depth: 20, cell_size: 1, origin: [-10, 0, -10] }
`), 0o644))

	s := settings(t)
	s.Seed = 42
	s.Difficulty = "hard"

	_, r, err := execute(runOptions{scenario: path}, s, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, "hard", r.Difficulty)

	_, r, err = execute(runOptions{scenario: path, seed: 7, seedSet: true, difficulty: "easy"}, s, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(7), r.Seed, "flags win over settings")
	assert.Equal(t, "easy", r.Difficulty)

	_, r, err = execute(runOptions{scenario: path}, settings(t), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(9), r.Seed, "unset settings keep the scenario's")
	assert.Equal(t, "normal", r.Difficulty)
}

func TestExecuteScenarioFromAssetDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drill.yaml"), []byte(`name: drill
ticks: 3
arena: { width: 20, depth: 20, cell_size: 1, origin: [-10, 0, -10] }
`), 0o644))

	s := settings(t)
	s.AssetDir = dir
	_, r, err := execute(runOptions{scenario: "drill.yaml"}, s, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "drill", r.Scenario)
	assert.Equal(t, 3, r.Ticks)
}

func TestExecuteErrors(t *testing.T) {
	_, _, err := execute(runOptions{scenario: "nope.yaml"}, settings(t), zerolog.Nop())
	assert.Error(t, err)

	_, _, err = execute(runOptions{scenario: "scenario.yaml", format: "xml", ticks: 1, ticksSet: true}, settings(t), zerolog.Nop())
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestBindingsCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"bindings"})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "reloadWeapon")
	assert.Contains(t, out, "Mouse0")
	assert.Contains(t, out, "look speed")
}
