package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed scenes.yaml
var scenesYAML []byte

// Point is a coordinate in map pixels
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SceneConfig describes one explorable map
type SceneConfig struct {
	Map           string `yaml:"map"`
	Background    string `yaml:"background"`
	DoorTarget    string `yaml:"door_target"`
	ExitTarget    string `yaml:"exit_target"`
	DoorSide      *Point `yaml:"door_side"`
	FallbackSpawn Point  `yaml:"fallback_spawn"`
}

// SceneTable is the full scene configuration
type SceneTable struct {
	ScaleFactor float64                `yaml:"scale_factor"`
	Start       string                 `yaml:"start"`
	Scenes      map[string]SceneConfig `yaml:"scenes"`
}

// Scenes is the scene table shipped with the binary
var Scenes SceneTable

// ParseScenes decodes and validates a scene table.
func ParseScenes(data []byte) (SceneTable, error) {
	var table SceneTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return SceneTable{}, fmt.Errorf("failed to decode scene table: %w", err)
	}
	if table.ScaleFactor <= 0 {
		return SceneTable{}, fmt.Errorf("scene table: scale_factor must be positive, got %v", table.ScaleFactor)
	}
	if _, ok := table.Scenes[table.Start]; !ok {
		return SceneTable{}, fmt.Errorf("scene table: start scene %q is not defined", table.Start)
	}
	for name, sc := range table.Scenes {
		if sc.Map == "" {
			return SceneTable{}, fmt.Errorf("scene table: scene %q has no map", name)
		}
		for _, target := range []string{sc.DoorTarget, sc.ExitTarget} {
			if target == "" {
				continue
			}
			if _, ok := table.Scenes[target]; !ok {
				return SceneTable{}, fmt.Errorf("scene table: scene %q targets unknown scene %q", name, target)
			}
		}
	}
	return table, nil
}

// MustParseScenes panics if the table cannot be parsed.
func MustParseScenes(data []byte) SceneTable {
	table, err := ParseScenes(data)
	if err != nil {
		panic(err)
	}
	return table
}

func init() {
	Scenes = MustParseScenes(scenesYAML)
}
