package weapon

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVec3(t *testing.T) {
	for _, in := range []string{"1,2,3", "(1 2 3)", "[1, 2, 3]", "  ( 1 ,2,  3 ) "} {
		v, err := ParseVec3(in)
		require.NoError(t, err, in)
		assert.Equal(t, mgl64.Vec3{1, 2, 3}, v, in)
	}
	for _, in := range []string{"1,2", "1,2,3,4", "a,b,c", ""} {
		_, err := ParseVec3(in)
		assert.Error(t, err, in)
	}
}

func TestApplyModifier(t *testing.T) {
	base := Stats{
		Name:         "carbine",
		MagazineSize: 30,
		Damage:       24,
		Spread:       0.5,
		Recoil:       mgl64.Vec3{0, 1, 0},
		AllowSemi:    true,
	}
	tests := []struct {
		name    string
		mod     Modifier
		wantErr error
		check   func(t *testing.T, w *Weapon)
	}{
		{"set int", Modifier{"magazineSize", " 40 ", OpSet}, nil, func(t *testing.T, w *Weapon) {
			assert.Equal(t, 40, w.stats.MagazineSize)
		}},
		{"add int", Modifier{"MagazineSize", "-5", OpAdd}, nil, func(t *testing.T, w *Weapon) {
			assert.Equal(t, 25, w.stats.MagazineSize)
		}},
		{"add float32", Modifier{"spread", "0.25", OpAdd}, nil, func(t *testing.T, w *Weapon) {
			assert.Equal(t, float32(0.75), w.stats.Spread)
		}},
		{"set float64 exponent", Modifier{"damage", "1e2", OpSet}, nil, func(t *testing.T, w *Weapon) {
			assert.Equal(t, 100.0, w.stats.Damage)
		}},
		{"add vec3", Modifier{"recoil", "(0.5, -0.5, 1)", OpAdd}, nil, func(t *testing.T, w *Weapon) {
			assert.Equal(t, mgl64.Vec3{0.5, 0.5, 1}, w.stats.Recoil)
		}},
		{"set bool", Modifier{"allowFull", "TRUE", OpSet}, nil, func(t *testing.T, w *Weapon) {
			assert.True(t, w.stats.AllowFull)
		}},
		{"set string keeps value as written", Modifier{"name", " carbine SD", OpSet}, nil, func(t *testing.T, w *Weapon) {
			assert.Equal(t, " carbine SD", w.stats.Name)
		}},
		{"set fire mode", Modifier{"fireMode", "FullAuto", OpSet}, nil, func(t *testing.T, w *Weapon) {
			assert.Equal(t, Full, w.mode)
		}},
		{"unknown stat", Modifier{"velocity", "900", OpSet}, ErrUnknownStat, nil},
		{"unparsable int", Modifier{"magazineSize", "4.5", OpSet}, ErrBadValue, nil},
		{"short vector", Modifier{"recoil", "1,2", OpAdd}, ErrBadValue, nil},
		{"add on bool", Modifier{"allowSafe", "true", OpAdd}, ErrUnsupportedOp, nil},
		{"add on fire mode", Modifier{"fireMode", "full", OpAdd}, ErrUnsupportedOp, nil},
		{"no mode", Modifier{"damage", "1", OpInvalid}, ErrUnsupportedOp, nil},
		{"bad bool", Modifier{"allowFull", "yes", OpSet}, ErrBadValue, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Weapon{stats: base}
			err := w.ApplyModifier(tt.mod)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, base, w.stats, "failed modifiers write nothing")
				assert.Equal(t, Safe, w.mode)
				return
			}
			require.NoError(t, err)
			tt.check(t, w)
		})
	}
}

func TestStatNamesCoverTable(t *testing.T) {
	names := StatNames()
	assert.Contains(t, names, "roundsperminute")
	assert.Contains(t, names, "firemode")
	assert.IsIncreasing(t, names)
}
