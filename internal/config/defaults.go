package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// Dimensions and counts follow the classic setup: a 20x20 field, a
// four-segment snake and forty random obstacles.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Snake: BodyConfig{
			InitialLength:  4,
			MoveEveryTicks: 6,
		},
		Obstacles: ObstacleConfig{
			Count: 40,
		},
		Pilot: PilotConfig{
			Strategy:      "astar",
			MaxExpansions: 0,
			ShowVisited:   true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
