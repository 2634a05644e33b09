package utils

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ResolutionConfig struct {
	X, Y int
}

type UIConfig struct {
	Title      string
	Resolution ResolutionConfig
}

type GameConfig struct {
	TPS       int
	ShowDebug bool
}

// SimulationConfig controls how scene steps relate to wall time. Zero
// StepsPerSecond means one step per tick, whatever the tick took.
type SimulationConfig struct {
	StepsPerSecond int
}

type AssetsConfig struct {
	// Dir overrides the embedded asset pack with a directory on disk.
	Dir string
}

type Config struct {
	UI         UIConfig
	Game       GameConfig
	Simulation SimulationConfig
	Assets     AssetsConfig
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Title:      "Merry Christmas!",
			Resolution: ResolutionConfig{X: 1200, Y: 800},
		},
		Game: GameConfig{TPS: 60},
	}
}

// ReadTOML reads fileName over the defaults. Keys the file leaves out keep their
// default values.
func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(file, config); err != nil {
		return nil, err
	}
	return config, nil
}
