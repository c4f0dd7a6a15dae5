// shared/setup.go
package shared

import (
	"fmt"

	"github.com/gas/fancy-effects/config"
	"github.com/gas/fancy-effects/effects"
	"github.com/gas/fancy-effects/logging"
	"github.com/gas/fancy-effects/themes"
)

// SetupResult agrupa todo lo que la inicialización produce.
type SetupResult struct {
	Config *config.Config
	Theme  *themes.Theme
	Effect effects.Effect
}

// Setup realiza toda la carga de configuración e inicialización del efecto.
// effectName vacío significa "el de la config".
func Setup(effectName, text string) (*SetupResult, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	theme, err := themes.LoadTheme(cfg.Theme.SelectedTheme)
	if err != nil {
		// Un tema roto no debería impedir arrancar: avisamos y seguimos
		// con el tema incorporado.
		logging.Log.Printf("Error cargando tema '%s': %v (usando el tema por defecto)", cfg.Theme.SelectedTheme, err)
		theme = themes.DefaultTheme()
	}

	if effectName == "" {
		effectName = cfg.General.DefaultEffect
	}

	eff, err := effects.New(effectName, text)
	if err != nil {
		return nil, err
	}

	// La tabla [effects.<nombre>] del TOML va tal cual al Init del efecto,
	// como la config de cada bloque en el dashboard.
	effectConfig, _ := cfg.Effects[effectName].(map[string]interface{})
	if effectConfig == nil {
		effectConfig = map[string]interface{}{}
	}
	if err := eff.Init(effectConfig, cfg.General, theme); err != nil {
		return nil, fmt.Errorf("error inicializando efecto '%s': %w", effectName, err)
	}

	return &SetupResult{
		Config: cfg,
		Theme:  theme,
		Effect: eff,
	}, nil
}
