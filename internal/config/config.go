// Package config provides YAML-based configuration loading for the snake
// game and its autopilot.
package config

// SnakeConfig contains all configuration for the snake game and the pilot.
type SnakeConfig struct {
	Grid      GridConfig     `yaml:"grid"`
	Snake     BodyConfig     `yaml:"snake"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Pilot     PilotConfig    `yaml:"pilot"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BodyConfig defines snake parameters.
type BodyConfig struct {
	InitialLength  int `yaml:"initial_length"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// ObstacleConfig defines the random obstacle field.
type ObstacleConfig struct {
	Count int `yaml:"count"`
}

// PilotConfig defines the autopilot search parameters.
type PilotConfig struct {
	// Strategy is the search strategy name: bfs, dfs, dijkstra or astar.
	Strategy string `yaml:"strategy"`

	// MaxExpansions caps expanded search states per plan; 0 disables.
	MaxExpansions int `yaml:"max_expansions"`

	// ShowVisited paints the cells the last search expanded.
	ShowVisited bool `yaml:"show_visited"`
}
