// Package config provides YAML-based platform settings for the game.
// Only platform concerns live here (tick rate, field dimensions, audio,
// storage paths); simulation balance constants are fixed in the game
// package and deliberately not configurable.
package config

// Settings is the top-level platform configuration.
type Settings struct {
	TickRate int             `yaml:"tick_rate"`
	Field    FieldSettings   `yaml:"field"`
	Audio    AudioSettings   `yaml:"audio"`
	Storage  StorageSettings `yaml:"storage"`
}

// FieldSettings sets the playing field size in world units.
type FieldSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AudioSettings controls the synthesized sound effects.
type AudioSettings struct {
	Enabled bool `yaml:"enabled"`
}

// StorageSettings points at the local score database.
type StorageSettings struct {
	Path string `yaml:"path"`
}

// Default returns the compiled-in settings.
func Default() Settings {
	return Settings{
		TickRate: 60,
		Field: FieldSettings{
			Width:  800,
			Height: 600,
		},
		Audio: AudioSettings{
			Enabled: true,
		},
		Storage: StorageSettings{
			Path: "~/.syscrit/scores.db",
		},
	}
}
