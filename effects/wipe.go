// effects/wipe.go
package effects

import (
	"fmt"

	"github.com/gas/fancy-effects/config"
	"github.com/gas/fancy-effects/easing"
	"github.com/gas/fancy-effects/engine"
	"github.com/gas/fancy-effects/graphics"
	"github.com/gas/fancy-effects/themes"
)

const (
	defaultWipeGradientSteps = 6
	defaultWipeSceneTicks    = 3
)

// WipeConfig es la configuración del efecto wipe.
type WipeConfig struct {
	// GradientSteps es el número de colores del destello de revelado.
	GradientSteps int
	// SceneTicks es la duración base por color, en ticks.
	SceneTicks int
}

// Wipe revela el texto columna a columna de izquierda a derecha. A diferencia
// de horizontalcycle, este efecto sí termina: cuando todo es visible y no
// queda ninguna escena activa.
type Wipe struct {
	text  string
	cfg   WipeConfig
	theme *themes.Theme
}

// NewWipe construye el efecto sobre el texto dado.
func NewWipe(text string) Effect {
	return &Wipe{
		text: text,
		cfg: WipeConfig{
			GradientSteps: defaultWipeGradientSteps,
			SceneTicks:    defaultWipeSceneTicks,
		},
	}
}

func (e *Wipe) Name() string { return "wipe" }

func (e *Wipe) Init(effectConfig map[string]interface{}, globalConfig config.GeneralConfig, theme *themes.Theme) error {
	e.cfg.GradientSteps = intFromConfig(effectConfig, "gradient_steps", defaultWipeGradientSteps)
	e.cfg.SceneTicks = intFromConfig(effectConfig, "scene_ticks", defaultWipeSceneTicks)
	e.theme = theme
	return nil
}

func (e *Wipe) Frames() (Iterator, error) {
	if e.cfg.GradientSteps < 1 {
		return nil, fmt.Errorf("gradient_steps=%d (tiene que ser >= 1): %w", e.cfg.GradientSteps, ErrConfiguration)
	}
	if e.cfg.SceneTicks < 1 {
		return nil, fmt.Errorf("scene_ticks=%d (tiene que ser >= 1): %w", e.cfg.SceneTicks, ErrConfiguration)
	}

	theme := e.theme
	if theme == nil {
		theme = themes.DefaultTheme()
	}
	accent, err := graphics.NewColor(theme.Colors.Accent)
	if err != nil {
		return nil, fmt.Errorf("color de acento del tema: %w", ErrConfiguration)
	}
	text, err := graphics.NewColor(theme.Colors.Text)
	if err != nil {
		return nil, fmt.Errorf("color de texto del tema: %w", ErrConfiguration)
	}
	gradient, err := graphics.NewGradient(e.cfg.GradientSteps, accent, text)
	if err != nil {
		return nil, err
	}

	it := &WipeIterator{
		terminal:   engine.NewTerminal(e.text),
		gradient:   gradient,
		sceneTicks: e.cfg.SceneTicks,
	}
	return it, nil
}

// WipeIterator revela una columna por tick y deja que las escenas de
// revelado terminen solas.
type WipeIterator struct {
	terminal   *engine.Terminal
	gradient   *graphics.Gradient
	sceneTicks int
	nextCol    int
}

// Done indica si el revelado ha acabado: todo visible y nada animándose.
func (it *WipeIterator) Done() bool {
	for _, c := range it.terminal.Characters() {
		if !c.IsVisible() || c.IsActive() {
			return false
		}
	}
	return true
}

// Next revela la siguiente columna con un destello acento->texto, avanza
// todas las escenas activas y devuelve el frame.
func (it *WipeIterator) Next() (string, error) {
	revealed := false
	for _, c := range it.terminal.Characters() {
		if c.Col() != it.nextCol {
			continue
		}
		revealed = true
		it.terminal.SetCharacterVisibility(c, true)
		scn := engine.NewScene(easing.OutCubic)
		if err := scn.ApplyGradientToSymbols(it.gradient, c.InputSymbol(), it.sceneTicks); err != nil {
			return "", err
		}
		c.ActivateScene(scn)
	}
	if revealed {
		it.nextCol++
	}

	for _, c := range it.terminal.Characters() {
		c.Tick()
	}

	return it.terminal.RenderFrame(), nil
}
