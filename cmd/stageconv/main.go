// stageconv evaluates the Lua arena scripts and writes the resulting stage
// list as YAML, for reviewing what a seed actually spawns.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/orbitfall/engine/internal/scripting"
	"github.com/orbitfall/engine/internal/vmath"
)

type Spawn struct {
	Archetype string  `yaml:"archetype"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Direction float64 `yaml:"direction"`
}

type Stage struct {
	Name   string  `yaml:"name"`
	Delay  float64 `yaml:"delay"`
	Spawns []Spawn `yaml:"spawns"`
}

type stageFile struct {
	Stages []Stage `yaml:"stages"`
}

var errUsage = errors.New("usage: stageconv <scripts-dir> <output.yaml> [seed] [width] [height]")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 2 {
		return errUsage
	}

	env := scripting.Env{Width: 160, Height: 48}
	seed := int64(1)
	for i, dst := range []any{&seed, &env.Width, &env.Height} {
		if len(args) <= 2+i {
			break
		}
		var err error
		switch p := dst.(type) {
		case *int64:
			*p, err = strconv.ParseInt(args[2+i], 10, 64)
		case *float64:
			*p, err = strconv.ParseFloat(args[2+i], 64)
		}
		if err != nil {
			return err
		}
	}
	env.Random = vmath.NewRandom(seed)

	out, spawns, err := convert(args[0], env)
	if err != nil {
		return err
	}

	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# Stage list, generated from %s with seed %d (%d stages)\n", args[0], seed, len(out))
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(stageFile{Stages: out}); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d stages (%d spawns) to %s\n", len(out), spawns, args[1])
	return nil
}

// convert evaluates the scripts in dir and returns the stages with each
// stage's spawns sorted by archetype, x, y.
func convert(dir string, env scripting.Env) ([]Stage, int, error) {
	eng, err := scripting.NewEngine(dir, env, zap.NewNop())
	if err != nil {
		return nil, 0, err
	}
	defer eng.Close()

	stages, err := eng.Stages()
	if err != nil {
		return nil, 0, err
	}

	out := make([]Stage, 0, len(stages))
	spawns := 0
	for _, st := range stages {
		s := Stage{Name: st.Name, Delay: st.Delay}
		for _, sp := range st.Spawns {
			s.Spawns = append(s.Spawns, Spawn{Archetype: sp.Archetype, X: sp.At.X, Y: sp.At.Y, Direction: sp.Direction})
		}
		sort.SliceStable(s.Spawns, func(i, j int) bool {
			a, b := s.Spawns[i], s.Spawns[j]
			if a.Archetype != b.Archetype {
				return a.Archetype < b.Archetype
			}
			if a.X != b.X {
				return a.X < b.X
			}
			return a.Y < b.Y
		})
		spawns += len(s.Spawns)
		out = append(out, s)
	}
	return out, spawns, nil
}
