// engine/animation.go
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/gas/fancy-effects/easing"
	"github.com/gas/fancy-effects/graphics"
)

// ErrSceneConstruction se devuelve cuando una escena se intenta poblar con
// parámetros sin sentido (menos de un paso, sin gradiente...).
var ErrSceneConstruction = errors.New("construcción de escena inválida")

// SceneFrame es una pareja (símbolo pintado, duración en ticks).
type SceneFrame struct {
	Symbol   string
	Duration int
}

// Scene es una secuencia ordenada de SceneFrames con un playhead, ligada a
// una curva de easing que reparte la duración total entre los frames.
type Scene struct {
	ease     easing.Ease
	frames   []SceneFrame
	playhead int
	total    int // suma de duraciones, cacheada
}

// NewScene crea una escena vacía ligada a la curva dada. Con ease nil se usa
// Linear.
func NewScene(ease easing.Ease) *Scene {
	if ease == nil {
		ease = easing.Linear
	}
	return &Scene{ease: ease}
}

// ApplyGradientToSymbols puebla la escena con un frame por cada color del
// gradiente: el glifo base pintado con ese color. La duración total es
// len(colores)*frameTicks, pero el reparto entre frames lo decide la curva de
// easing sobre fracciones de tiempo equiespaciadas, así que el ritmo visual
// no es uniforme aunque el número de frames sea fijo. Cada frame dura al
// menos un tick.
func (s *Scene) ApplyGradientToSymbols(g *graphics.Gradient, base string, frameTicks int) error {
	if frameTicks < 1 {
		return fmt.Errorf("frameTicks=%d: %w", frameTicks, ErrSceneConstruction)
	}
	if g == nil || g.Steps() == 0 {
		return fmt.Errorf("gradiente vacío: %w", ErrSceneConstruction)
	}

	colors := g.Colors()
	totalTicks := len(colors) * frameTicks

	s.frames = s.frames[:0]
	s.playhead = 0
	s.total = 0

	elapsed := 0
	for i, color := range colors {
		// Frontera del frame i según la curva: un easing acelerado al
		// principio produce frames cortos al inicio y largos al final.
		fraction := float64(i+1) / float64(len(colors))
		boundary := int(math.Round(s.ease(fraction) * float64(totalTicks)))
		duration := boundary - elapsed
		if duration < 1 {
			duration = 1
		}
		elapsed += duration
		s.frames = append(s.frames, SceneFrame{Symbol: color.Paint(base), Duration: duration})
	}
	s.total = elapsed
	return nil
}

// Frames devuelve una copia de los frames de la escena.
func (s *Scene) Frames() []SceneFrame {
	out := make([]SceneFrame, len(s.frames))
	copy(out, s.frames)
	return out
}

// length devuelve la duración total de la escena en ticks.
func (s *Scene) length() int { return s.total }

// symbolAt devuelve el símbolo que corresponde al tick dado.
func (s *Scene) symbolAt(tick int) string {
	elapsed := 0
	for _, f := range s.frames {
		elapsed += f.Duration
		if tick < elapsed {
			return f.Symbol
		}
	}
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[len(s.frames)-1].Symbol
}
