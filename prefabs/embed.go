package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Source yields raw asset bytes by name.
type Source interface {
	Load(name string) ([]byte, error)
}

// ScriptSource yields script source by name.
type ScriptSource interface {
	LoadScript(name string) ([]byte, error)
}

// Dir reads assets from a directory on disk and falls back to the
// embedded copies, so edited files win over the shipped ones.
type Dir string

// Default overrides from ./prefabs.
const Default Dir = "prefabs"

func (d Dir) Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if d != "" {
		if data, err := os.ReadFile(d.path(clean)); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func (d Dir) LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if d != "" {
		if data, err := os.ReadFile(d.path(clean)); err == nil {
			return data, nil
		}
	}
	return ScriptsFS.ReadFile(clean)
}

func (d Dir) path(clean string) string {
	return filepath.Join(string(d), filepath.FromSlash(clean))
}

func Load(name string) ([]byte, error) {
	return Default.Load(name)
}

func LoadScript(name string) ([]byte, error) {
	return Default.LoadScript(name)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}
