// themes/themes.go
package themes

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type ThemeColors struct {
	// Colores en hex "rrggbb". Accent es el color central de los destellos;
	// Text el color de reposo de los glifos.
	Text       string `toml:"text"`
	Accent     string `toml:"accent"`
	Background string `toml:"background"`
}

type Theme struct {
	Name   string      `toml:"name"`
	Colors ThemeColors `toml:"colors"`
}

// DefaultTheme es el tema incorporado: blanco sobre negro con acento rojo,
// para que el programa funcione sin archivos de tema instalados.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",
		Colors: ThemeColors{
			Text:       "ffffff",
			Accent:     "ff0000",
			Background: "000000",
		},
	}
}

// LoadTheme busca el tema en ~/.config/fancy-effects/themes/<nombre>.toml.
// El tema "default" siempre existe aunque no haya archivo.
func LoadTheme(themeName string) (*Theme, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio home: %w", err)
	}
	filePath := filepath.Join(homeDir, ".config", "fancy-effects", "themes", themeName+".toml")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) && themeName == "default" {
			return DefaultTheme(), nil
		}
		return nil, fmt.Errorf("no se pudo leer el archivo de tema %s: %w", filePath, err)
	}

	var theme Theme
	err = toml.Unmarshal(data, &theme)
	if err != nil {
		return nil, fmt.Errorf("no se pudo parsear el TOML del tema: %w", err)
	}

	return &theme, nil
}
