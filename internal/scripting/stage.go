package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/orbitfall/engine/internal/vmath"
)

// --- Stage Bridge ---

// Spawn places one archetype when a stage starts.
type Spawn struct {
	Archetype string
	At        vmath.Vec
	Direction float64
}

// Stage is one wave of the arena. It is cleared when no hostile link is left.
type Stage struct {
	Name   string
	Delay  float64 // seconds between the previous stage clearing and this one spawning
	Spawns []Spawn
}

// Stages calls Lua stages() and converts the returned list:
//
//	{ { name=, delay=, spawns={ {archetype=, x=, y=, direction=}, ... } }, ... }
func (e *Engine) Stages() ([]Stage, error) {
	fn := e.vm.GetGlobal("stages")
	if fn == lua.LNil {
		return nil, ErrNoStages
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}); err != nil {
		return nil, fmt.Errorf("lua stages: %w", err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("lua stages returned %s, want table", result.Type())
	}

	var (
		stages []Stage
		bad    error
	)
	rt.ForEach(func(_, v lua.LValue) {
		row, ok := v.(*lua.LTable)
		if !ok || bad != nil {
			return
		}
		st := Stage{
			Name:  lStr(row, "name"),
			Delay: lNum(row, "delay"),
		}
		if st.Name == "" {
			st.Name = fmt.Sprintf("stage %d", len(stages)+1)
		}
		if spawns, ok := row.RawGetString("spawns").(*lua.LTable); ok {
			spawns.ForEach(func(_, sv lua.LValue) {
				s, ok := sv.(*lua.LTable)
				if !ok {
					return
				}
				sp := Spawn{
					Archetype: lStr(s, "archetype"),
					At:        vmath.Vec{X: lNum(s, "x"), Y: lNum(s, "y")},
					Direction: vmath.NormalizeAngle(lNum(s, "direction")),
				}
				if sp.Archetype == "" {
					bad = fmt.Errorf("stage %q: spawn without archetype", st.Name)
					return
				}
				st.Spawns = append(st.Spawns, sp)
			})
		}
		stages = append(stages, st)
	})
	if bad != nil {
		return nil, bad
	}

	e.log.Info("lua stages loaded", zap.Int("stages", len(stages)))
	return stages, nil
}
