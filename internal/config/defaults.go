// Package config provides configuration loading and validation for the twothree CLI.
package config

// Traversal orders accepted in OutputConfig.Orders.
const (
	OrderPre  = "pre"
	OrderIn   = "in"
	OrderPost = "post"
)

// Structure renderers accepted in OutputConfig.Render.
const (
	RenderLevels = "levels"
	RenderTree   = "tree"
	RenderNone   = "none"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Output: OutputConfig{
			Orders: []string{OrderPre, OrderIn, OrderPost},
			Render: RenderLevels,
		},
		Demo: DemoConfig{
			Sequential: 10,
			Keys:       []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15},
		},
	}
}
