// graphics/color.go
package graphics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color es un valor RGB inmutable, construido desde un string hexadecimal.
// Por dentro usamos colorful.Color, que nos da la interpolación gratis.
type Color struct {
	c colorful.Color
}

// NewColor parsea un color en formato "rrggbb" o "#rrggbb".
func NewColor(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("no se pudo parsear el color '%s': %w", hex, err)
	}
	return Color{c: c}, nil
}

// MustColor es como NewColor pero entra en pánico si el hex es inválido.
// Solo para colores literales escritos en el código.
func MustColor(hex string) Color {
	c, err := NewColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex devuelve el color como "#rrggbb" en minúsculas.
func (c Color) Hex() string {
	return c.c.Hex()
}

// Blend interpola en espacio RGB hacia other. t=0 devuelve c, t=1 devuelve other.
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{c: c.c.BlendRgb(other.c, t)}
}

// Paint devuelve el símbolo renderizado con este color como foreground.
func (c Color) Paint(symbol string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(symbol)
}
