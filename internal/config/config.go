// Package config holds shared settings for the lesson authoring tools.
package config

// Config holds all tool settings.
type Config struct {
	Cubemap CubemapConfig `yaml:"cubemap"`
	Shader  ShaderConfig  `yaml:"shader"`
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`
}

// CubemapConfig holds defaults for the equirectangular converter.
type CubemapConfig struct {
	Size   int    `yaml:"size"`   // face resolution in pixels
	Format string `yaml:"format"` // "png" or "ppm"
}

// ShaderConfig holds shader toolchain settings.
type ShaderConfig struct {
	GlslcPath string `yaml:"glslc_path"`
}

// CaptureConfig holds screenshot/GIF capture settings.
type CaptureConfig struct {
	FPS   float64 `yaml:"fps"`
	Scale float64 `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the project's default values.
func Default() *Config {
	return &Config{
		Cubemap: CubemapConfig{
			Size:   512,
			Format: "png",
		},
		Shader: ShaderConfig{
			GlslcPath: "glslc",
		},
		Capture: CaptureConfig{
			FPS:   10,
			Scale: 1.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
