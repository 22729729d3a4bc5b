package script_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fireteam/enemy"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/script"
	"github.com/milk9111/fireteam/weapon"
)

func TestShippedScriptFalloff(t *testing.T) {
	h, err := script.Load("shot.tengo", zerolog.Nop())
	require.NoError(t, err)

	tests := []struct {
		name string
		in   script.Input
		want float64
	}{
		{name: "close semi", in: script.Input{Damage: 20, Distance: 5, Mode: "semi"}, want: 20},
		{name: "far semi", in: script.Input{Damage: 20, Distance: 20, Mode: "semi"}, want: 15},
		{name: "close full", in: script.Input{Damage: 20, Distance: 5, Mode: "full"}, want: 18},
		{name: "far full", in: script.Input{Damage: 20, Distance: 30, Mode: "full"}, want: 13.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Eval(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestWeaponHookRunsNextFirst(t *testing.T) {
	h, err := script.Load("prefabs/scripts/shot.tengo", zerolog.Nop())
	require.NoError(t, err)

	hook := h.Weapon(func(s weapon.Shot) weapon.Shot {
		s.Distance = 16
		return s
	})
	got := hook(weapon.Shot{Weapon: "carbine", Mode: weapon.Full, Damage: 20, Remaining: 12})
	assert.InDelta(t, 13.5, got.Damage, 1e-9)
	assert.Equal(t, 12, got.Remaining)
}

func TestEnemyHookScalesBase(t *testing.T) {
	h, err := script.Load("shot.tengo", zerolog.Nop())
	require.NoError(t, err)

	var dealt []float64
	hook := h.Enemy(12, func(_ enemy.Shot, d float64) { dealt = append(dealt, d) })
	hook(enemy.Shot{Enemy: "alpha", Distance: 4})
	hook(enemy.Shot{Enemy: "alpha", Distance: 18})
	assert.InDeltaSlice(t, []float64{12, 9}, dealt, 1e-9)
}

func TestRuntimeFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	h, err := script.Compile("div", []byte(`damage = damage + source`), zerolog.New(&buf))
	require.NoError(t, err)

	got := h.Weapon(nil)(weapon.Shot{Weapon: "carbine", Damage: 7})
	assert.Equal(t, 7.0, got.Damage)
	assert.Contains(t, buf.String(), "shot script failed")
}

func TestLoadErrors(t *testing.T) {
	_, err := script.Load("", zerolog.Nop())
	assert.ErrorIs(t, err, script.ErrNoScript)

	_, err = script.Load("missing.tengo", zerolog.Nop())
	assert.Error(t, err)

	_, err = script.Compile("syntax", []byte(`damage = (`), zerolog.Nop())
	assert.Error(t, err)

	_, err = script.Compile("unresolved", []byte(`damage = damage * nope`), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved")
}

func TestDamageMustBeNumeric(t *testing.T) {
	var buf bytes.Buffer
	h, err := script.Compile("words", []byte(`damage = "lots"`), zerolog.New(&buf))
	require.NoError(t, err)

	_, err = h.Eval(script.Input{Damage: 7})
	assert.ErrorIs(t, err, script.ErrNotNumber)

	got := h.Weapon(nil)(weapon.Shot{Weapon: "carbine", Damage: 7})
	assert.Equal(t, 7.0, got.Damage)
	assert.Contains(t, buf.String(), "shot script failed")

	ints, err := script.Compile("ints", []byte(`damage = 9`), zerolog.Nop())
	require.NoError(t, err)
	d, err := ints.Eval(script.Input{Damage: 7})
	require.NoError(t, err)
	assert.Equal(t, 9.0, d)
}

func TestLoadFromAssetDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "triple.tengo"), []byte(`damage = damage * 3`), 0o644))

	h, err := script.LoadFrom(prefabs.Dir(dir), "triple.tengo", zerolog.Nop())
	require.NoError(t, err)
	d, err := h.Eval(script.Input{Damage: 2})
	require.NoError(t, err)
	assert.Equal(t, 6.0, d)

	_, err = script.LoadFrom(prefabs.Dir(dir), "missing.tengo", zerolog.Nop())
	assert.Error(t, err)
}
