// config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type GeneralConfig struct {
	// FrameSeconds es el ritmo del host en modo TUI. El motor no sabe de
	// tiempo: solo cuánto avanza por tick, no cuándo ocurre el tick.
	FrameSeconds float64 `toml:"frame_seconds"`
	// MaxFrames limita cuántos frames vuelca el modo TTY.
	MaxFrames int `toml:"max_frames"`
	// DefaultEffect se usa cuando no se pide un efecto por flag.
	DefaultEffect string `toml:"default_effect"`
}

type ThemeConfig struct {
	SelectedTheme string `toml:"selected_theme"`
}

type Config struct {
	General GeneralConfig          `toml:"general"`
	Theme   ThemeConfig            `toml:"theme"`
	Effects map[string]interface{} `toml:"effects"`
}

// DefaultConfig devuelve la configuración con la que el programa funciona
// sin archivo ninguno.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			FrameSeconds:  0.05,
			MaxFrames:     120,
			DefaultEffect: "horizontalcycle",
		},
		Theme:   ThemeConfig{SelectedTheme: "default"},
		Effects: map[string]interface{}{},
	}
}

// LoadConfig lee ~/.config/fancy-effects/fancy_effects.toml. Si el archivo no
// existe no es un error: se usan los valores por defecto.
func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio home: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "fancy-effects", "fancy_effects.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("no se pudo leer el archivo de configuración %s: %w", configPath, err)
	}

	cfg := DefaultConfig()
	err = toml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("no se pudo parsear el TOML de configuración: %w", err)
	}

	return cfg, nil
}
