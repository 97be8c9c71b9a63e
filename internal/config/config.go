// Package config provides configuration loading and validation for the twothree CLI.
package config

// Config holds the complete CLI configuration.
type Config struct {
	Logging LogConfig    `yaml:"logging"`
	Output  OutputConfig `yaml:"output"`
	Demo    DemoConfig   `yaml:"demo"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// OutputConfig controls what is printed for a built tree.
type OutputConfig struct {
	// Orders lists the traversals to print: "pre", "in" and/or "post".
	Orders []string `yaml:"orders"`
	// Render selects the structure view: "levels", "tree" or "none".
	Render string `yaml:"render"`
}

// DemoConfig holds the fixtures run by the demo command.
type DemoConfig struct {
	// Sequential inserts the keys 0..Sequential-1 in increasing order.
	Sequential int `yaml:"sequential"`
	// Keys is inserted in the given order.
	Keys []int `yaml:"keys"`
}
