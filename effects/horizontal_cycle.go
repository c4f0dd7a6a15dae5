// effects/horizontal_cycle.go
package effects

import (
	"fmt"
	"math"

	"github.com/gas/fancy-effects/config"
	"github.com/gas/fancy-effects/easing"
	"github.com/gas/fancy-effects/engine"
	"github.com/gas/fancy-effects/graphics"
	"github.com/gas/fancy-effects/themes"
)

const (
	defaultCycleSpeed     = 0.1
	defaultCycleAmplitude = 5

	// Parámetros de la escena de brillo: blanco -> acento -> blanco.
	cycleGradientSteps = 10
	cycleSceneTicks    = 5
)

// HorizontalCycleConfig es la configuración del efecto horizontalcycle.
type HorizontalCycleConfig struct {
	// Speed es cuánto se desplaza la posición por tick. Siempre > 0.
	Speed float64
	// Amplitude es el desplazamiento absoluto máximo del texto. Siempre > 0.
	Amplitude int
}

// HorizontalCycle mueve el texto de izquierda a derecha y de vuelta en un
// ciclo continuo, con un brillo de gradiente recorriendo cada carácter.
type HorizontalCycle struct {
	text  string
	cfg   HorizontalCycleConfig
	theme *themes.Theme
}

// NewHorizontalCycle construye el efecto sobre el texto dado, sin más efectos
// secundarios que guardarse el texto.
func NewHorizontalCycle(text string) Effect {
	return &HorizontalCycle{
		text: text,
		cfg: HorizontalCycleConfig{
			Speed:     defaultCycleSpeed,
			Amplitude: defaultCycleAmplitude,
		},
	}
}

func (e *HorizontalCycle) Name() string { return "horizontalcycle" }

func (e *HorizontalCycle) Init(effectConfig map[string]interface{}, globalConfig config.GeneralConfig, theme *themes.Theme) error {
	e.cfg.Speed = floatFromConfig(effectConfig, "speed", defaultCycleSpeed)
	e.cfg.Amplitude = intFromConfig(effectConfig, "amplitude", defaultCycleAmplitude)
	e.theme = theme
	return nil
}

// Frames valida la configuración y construye el iterador. Cualquier error
// sale de aquí, antes del primer frame.
func (e *HorizontalCycle) Frames() (Iterator, error) {
	if e.cfg.Speed <= 0 {
		return nil, fmt.Errorf("speed=%v (tiene que ser > 0): %w", e.cfg.Speed, ErrConfiguration)
	}
	if e.cfg.Amplitude <= 0 {
		return nil, fmt.Errorf("amplitude=%d (tiene que ser > 0): %w", e.cfg.Amplitude, ErrConfiguration)
	}

	theme := e.theme
	if theme == nil {
		theme = themes.DefaultTheme()
	}
	accent, err := graphics.NewColor(theme.Colors.Accent)
	if err != nil {
		return nil, fmt.Errorf("color de acento del tema: %w", ErrConfiguration)
	}
	// El mismo gradiente le vale a todos los caracteres; las escenas no.
	gradient, err := graphics.NewGradient(cycleGradientSteps, graphics.MustColor("ffffff"), accent, graphics.MustColor("ffffff"))
	if err != nil {
		return nil, err
	}

	it := &HorizontalCycleIterator{
		terminal:  engine.NewTerminal(e.text),
		speed:     e.cfg.Speed,
		amplitude: e.cfg.Amplitude,
		direction: 1,
		gradient:  gradient,
	}
	it.build()
	return it, nil
}

// HorizontalCycleIterator es el controlador de movimiento del efecto: estado
// (offset, direction) más el terminal sobre el que activa escenas.
type HorizontalCycleIterator struct {
	terminal  *engine.Terminal
	speed     float64
	amplitude int
	gradient  *graphics.Gradient

	position  float64 // acumulador fraccional del desplazamiento
	offset    int     // posición entera actual, |offset| <= amplitude
	direction int     // +1 o -1
}

func (it *HorizontalCycleIterator) build() {
	for _, c := range it.terminal.Characters() {
		it.terminal.SetCharacterVisibility(c, true)
	}
}

// Done siempre es false: el ciclo no termina solo, parar es cosa del host.
func (it *HorizontalCycleIterator) Done() bool { return false }

// Next avanza el movimiento un tick, reactiva los caracteres inactivos con
// una nueva escena de brillo, avanza todas las escenas y devuelve el frame.
func (it *HorizontalCycleIterator) Next() (string, error) {
	if err := it.update(); err != nil {
		return "", err
	}

	for _, c := range it.terminal.Characters() {
		if !c.IsActive() {
			scn := engine.NewScene(easing.InCubic)
			if err := scn.ApplyGradientToSymbols(it.gradient, c.InputSymbol(), cycleSceneTicks); err != nil {
				return "", err
			}
			c.ActivateScene(scn)
		}
	}
	for _, c := range it.terminal.Characters() {
		c.Tick()
	}

	return it.terminal.RenderFrame(), nil
}

// update aplica la regla de movimiento: la posición avanza speed en la
// dirección actual, y al tocar |offset| == amplitude se fija al borde y se
// invierte la dirección. El flip ocurre solo en ese tick.
func (it *HorizontalCycleIterator) update() error {
	it.position += it.speed * float64(it.direction)
	if math.Abs(it.position) >= float64(it.amplitude) {
		it.position = float64(it.amplitude * it.direction)
		it.direction = -it.direction
	}
	// Truncando hacia cero, |offset| solo toca amplitude en el tick exacto
	// del flip; nunca antes ni después.
	it.offset = int(it.position)

	if it.offset > it.amplitude || it.offset < -it.amplitude {
		return fmt.Errorf("offset=%d con amplitude=%d: %w", it.offset, it.amplitude, ErrInvariant)
	}

	// El desplazamiento en pantalla: la columna de origen oscila entre 0 y
	// 2*amplitude, así el texto nunca se recorta por la izquierda.
	it.terminal.SetOrigin(it.amplitude + it.offset)
	return nil
}

// Offset expone el desplazamiento actual, útil para inspección y tests.
func (it *HorizontalCycleIterator) Offset() int { return it.offset }

// Direction expone la dirección actual (+1 o -1).
func (it *HorizontalCycleIterator) Direction() int { return it.direction }
