// engine/terminal.go
package engine

import "strings"

// Terminal posee la colección ordenada y fija de Characters construida a
// partir del texto de entrada. Después de la construcción solo muta el estado
// interno de cada carácter; el conjunto en sí no cambia nunca.
type Terminal struct {
	chars  []*Character
	lines  [][]*Character
	origin int // columna de arranque para desplazamiento horizontal
}

// NewTerminal construye un Character por cada posición del texto, en orden,
// todos inicialmente invisibles. Los saltos de línea separan líneas pero no
// producen Characters.
func NewTerminal(text string) *Terminal {
	t := &Terminal{}
	for lineIdx, line := range strings.Split(text, "\n") {
		var row []*Character
		for colIdx, r := range []rune(line) {
			c := &Character{
				index:       len(t.chars),
				line:        lineIdx,
				col:         colIdx,
				inputSymbol: string(r),
			}
			c.symbol = c.inputSymbol
			t.chars = append(t.chars, c)
			row = append(row, c)
		}
		t.lines = append(t.lines, row)
	}
	return t
}

// Characters devuelve un snapshot ordenado (orden = orden del texto) de todos
// los caracteres. La membresía es fija; solo sirve para leer y para mutar el
// estado de cada carácter, no para añadir ni quitar.
func (t *Terminal) Characters() []*Character {
	out := make([]*Character, len(t.chars))
	copy(out, t.chars)
	return out
}

// SetCharacterVisibility marca el carácter como visible o no. Es idempotente
// y no toca el estado de animación.
func (t *Terminal) SetCharacterVisibility(c *Character, visible bool) {
	if c == nil {
		return
	}
	c.visible = visible
}

// SetOrigin fija la columna de arranque del render: cada línea se dibuja con
// ese número de espacios delante. Valores negativos se recortan a 0.
func (t *Terminal) SetOrigin(col int) {
	if col < 0 {
		col = 0
	}
	t.origin = col
}

// Origin devuelve la columna de arranque actual.
func (t *Terminal) Origin() int { return t.origin }

// RenderFrame produce el estado actual como un único string: cada carácter
// visible aporta su símbolo actual, los invisibles se dibujan como espacio.
// Este es el único efecto de render que ve el bucle anfitrión.
func (t *Terminal) RenderFrame() string {
	var sb strings.Builder
	pad := strings.Repeat(" ", t.origin)
	for i, row := range t.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pad)
		for _, c := range row {
			if c.visible {
				sb.WriteString(c.symbol)
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
