// graphics/gradient.go
package graphics

import (
	"errors"
	"fmt"
)

// ErrGradientSteps se devuelve cuando se pide un gradiente sin pasos.
var ErrGradientSteps = errors.New("un gradiente necesita al menos 1 paso")

// Gradient es una secuencia ordenada y de longitud fija de colores
// interpolados entre los colores de control. El primero y el último color de
// control se conservan exactos en los extremos.
type Gradient struct {
	colors []Color
}

// NewGradient construye un gradiente con exactamente 'steps' colores que
// recorren los colores de control en orden.
func NewGradient(steps int, controls ...Color) (*Gradient, error) {
	if steps < 1 {
		return nil, fmt.Errorf("steps=%d: %w", steps, ErrGradientSteps)
	}
	if len(controls) == 0 {
		return nil, errors.New("un gradiente necesita al menos un color de control")
	}

	colors := make([]Color, 0, steps)
	if steps == 1 || len(controls) == 1 {
		// Sin espacio para interpolar: repetimos el primer control.
		for i := 0; i < steps; i++ {
			colors = append(colors, controls[0])
		}
		return &Gradient{colors: colors}, nil
	}

	segments := len(controls) - 1
	for i := 0; i < steps; i++ {
		// Posición global en [0,1] mapeada al tramo que toque.
		t := float64(i) / float64(steps-1)
		pos := t * float64(segments)
		idx := int(pos)
		if idx >= segments {
			idx = segments - 1
		}
		local := pos - float64(idx)
		colors = append(colors, controls[idx].Blend(controls[idx+1], local))
	}
	return &Gradient{colors: colors}, nil
}

// Steps devuelve cuántos colores produce el gradiente.
func (g *Gradient) Steps() int {
	return len(g.colors)
}

// Colors devuelve una copia de la secuencia de colores.
func (g *Gradient) Colors() []Color {
	out := make([]Color, len(g.colors))
	copy(out, g.colors)
	return out
}
