package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Archetype is the static definition of one kind of link, loaded from YAML.
// Optional blocks left out of the file attach no trait.
type Archetype struct {
	Name     string   `yaml:"name"`
	Radius   float64  `yaml:"radius"` // 0 = no collider
	HP       float64  `yaml:"hp"`     // 0 = no hit points
	Damage   float64  `yaml:"damage"`
	Tags     []string `yaml:"tags"`
	Targets  []string `yaml:"targets"`
	Reaction string   `yaml:"reaction"` // ignore, remove, bounce, bounce_other
	Lifetime float64  `yaml:"lifetime"` // seconds, 0 = forever
	Score    int      `yaml:"score"`
	Player   bool     `yaml:"player"`
	Hostile  bool     `yaml:"hostile"`

	Motion     *MotionSpec  `yaml:"motion"`
	Propulsion float64      `yaml:"propulsion"` // cruise speed along the facing direction
	Facing     *FacingSpec  `yaml:"facing"`
	Pilot      *PilotSpec   `yaml:"pilot"`
	Weapon     *WeaponSpec  `yaml:"weapon"`
	Explode    *ExplodeSpec `yaml:"explode"`
	Visual     VisualSpec   `yaml:"visual"`
}

// MotionSpec gives the link a velocity. Speed is applied along the spawn
// direction.
type MotionSpec struct {
	Speed       float64 `yaml:"speed"`
	Spin        float64 `yaml:"spin"` // radians per second
	Edge        string  `yaml:"edge"` // remove, bounce, ignore
	Restitution float64 `yaml:"restitution"`
}

type FacingSpec struct {
	Mode            string   `yaml:"mode"` // instant, smooth, anticipated
	SteeringSpeed   float64  `yaml:"steering_speed"`
	ProjectileSpeed float64  `yaml:"projectile_speed"`
	Targets         []string `yaml:"targets"`
}

type PilotSpec struct {
	Thrust     float64 `yaml:"thrust"`
	TurnSpeed  float64 `yaml:"turn_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	AimPointer bool    `yaml:"aim_pointer"`
}

type WeaponSpec struct {
	Projectile  string  `yaml:"projectile"`
	Cooldown    float64 `yaml:"cooldown"`
	MuzzleSpeed float64 `yaml:"muzzle_speed"`
	Offset      float64 `yaml:"offset"`
	AutoFire    bool    `yaml:"auto_fire"`
}

type ExplodeSpec struct {
	Archetype string  `yaml:"archetype"`
	Count     int     `yaml:"count"`
	Speed     float64 `yaml:"speed"`
}

type VisualSpec struct {
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
	Sprite string `yaml:"sprite"`
}

type archetypeListFile struct {
	Archetypes []Archetype `yaml:"archetypes"`
}

// ArchetypeTable holds all archetypes indexed by name, in file order.
type ArchetypeTable struct {
	byName map[string]*Archetype
	order  []string
}

// LoadArchetypes loads archetype definitions from a YAML file.
func LoadArchetypes(path string) (*ArchetypeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archetypes: %w", err)
	}
	return ParseArchetypes(raw)
}

// ParseArchetypes decodes an archetypes document. Names must be unique.
func ParseArchetypes(raw []byte) (*ArchetypeTable, error) {
	var f archetypeListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse archetypes: %w", err)
	}
	t := &ArchetypeTable{byName: make(map[string]*Archetype, len(f.Archetypes))}
	for i := range f.Archetypes {
		a := &f.Archetypes[i]
		if a.Name == "" {
			return nil, fmt.Errorf("parse archetypes: entry %d has no name", i)
		}
		if _, dup := t.byName[a.Name]; dup {
			return nil, fmt.Errorf("parse archetypes: duplicate name %q", a.Name)
		}
		t.byName[a.Name] = a
		t.order = append(t.order, a.Name)
	}
	return t, nil
}

// Get returns an archetype by name, or nil if not found.
func (t *ArchetypeTable) Get(name string) *Archetype {
	return t.byName[name]
}

// Names returns archetype names in file order.
func (t *ArchetypeTable) Names() []string {
	return append([]string(nil), t.order...)
}

// Count returns the number of loaded archetypes.
func (t *ArchetypeTable) Count() int {
	return len(t.byName)
}
