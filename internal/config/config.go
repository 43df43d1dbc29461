// Package config handles meshtune CLI configuration.
package config

// Config holds all tool settings.
type Config struct {
	Optimize OptimizeConfig `yaml:"optimize"`
	Preview  PreviewConfig  `yaml:"preview"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OptimizeConfig holds the geometry-processing parameters reported and
// forwarded by the CLI.
type OptimizeConfig struct {
	// TargetRatio is the default simplification target as a fraction of the
	// current index count.
	TargetRatio float32 `yaml:"target_ratio"`
	// OverdrawThreshold bounds the cache-hit trade-off of the overdraw pass.
	OverdrawThreshold float32 `yaml:"overdraw_threshold"`
	// MeshletMaxVertices and MeshletMaxTriangles bound meshlet size.
	MeshletMaxVertices  int `yaml:"meshlet_max_vertices"`
	MeshletMaxTriangles int `yaml:"meshlet_max_triangles"`
	// MeshletConeWeight balances triangle balance against cone tightness.
	MeshletConeWeight float32 `yaml:"meshlet_cone_weight"`
}

// PreviewConfig holds terminal preview settings.
type PreviewConfig struct {
	FPS        int      `yaml:"fps"`
	Background [3]uint8 `yaml:"background"`
	Wireframe  [3]uint8 `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Optimize: OptimizeConfig{
			TargetRatio:         0.5,
			OverdrawThreshold:   1.05,
			MeshletMaxVertices:  64,
			MeshletMaxTriangles: 124,
			MeshletConeWeight:   0.0,
		},
		Preview: PreviewConfig{
			FPS:        60,
			Background: [3]uint8{30, 30, 40},
			Wireframe:  [3]uint8{0, 255, 128},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
