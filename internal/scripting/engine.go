package scripting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/orbitfall/engine/internal/vmath"
)

// ErrNoStages is returned when no loaded script defines stages().
var ErrNoStages = errors.New("lua function stages not found")

// Env is what the scripts can see of the simulation.
type Env struct {
	Random *vmath.Random
	Width  float64
	Height float64
}

// Engine wraps a single gopher-lua VM used to describe arena content.
// Single-goroutine access only (boot and game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
	rng *vmath.Random
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory, then from its stages/ subdirectory.
func NewEngine(scriptsDir string, env Env, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if env.Random == nil {
		env.Random = vmath.NewRandom(0)
	}

	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("FIELD_W", lua.LNumber(env.Width))
	vm.SetGlobal("FIELD_H", lua.LNumber(env.Height))

	e := &Engine{vm: vm, log: log, rng: env.Random}
	vm.SetGlobal("rand_range", vm.NewFunction(e.randRange))
	vm.SetGlobal("rand_angle", vm.NewFunction(e.randAngle))

	for _, dir := range []string{scriptsDir, filepath.Join(scriptsDir, "stages")} {
		if err := e.loadDir(dir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString runs a chunk of Lua in the engine's VM.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// rand_range(lo, hi) -> number in [lo, hi)
func (e *Engine) randRange(L *lua.LState) int {
	lo := float64(L.CheckNumber(1))
	hi := float64(L.CheckNumber(2))
	L.Push(lua.LNumber(e.rng.Range(lo, hi)))
	return 1
}

// rand_angle() -> direction in (-pi, pi]
func (e *Engine) randAngle(L *lua.LState) int {
	L.Push(lua.LNumber(e.rng.Angle()))
	return 1
}

// lNum reads a number field from a Lua table.
func lNum(t *lua.LTable, key string) float64 {
	return float64(lua.LVAsNumber(t.RawGetString(key)))
}

// lStr reads a string field from a Lua table.
func lStr(t *lua.LTable, key string) string {
	return lua.LVAsString(t.RawGetString(key))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
