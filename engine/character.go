// engine/character.go
package engine

// Character posee el estado visual de un único glifo del texto de entrada.
// Se crea una vez al construir el Terminal y se muta en sitio durante toda la
// vida del efecto; nunca se destruye ni se recrea.
type Character struct {
	index int // posición en el texto de entrada
	line  int
	col   int

	inputSymbol string // el glifo original, sin pintar
	symbol      string // lo que se renderiza ahora mismo
	visible     bool
	active      bool
	scene       *Scene
}

// Index devuelve la posición del carácter en el texto de entrada.
func (c *Character) Index() int { return c.index }

// Line devuelve la línea (0-based) del carácter.
func (c *Character) Line() int { return c.line }

// Col devuelve la columna (0-based) del carácter dentro de su línea.
func (c *Character) Col() int { return c.col }

// InputSymbol devuelve el glifo base del carácter.
func (c *Character) InputSymbol() string { return c.inputSymbol }

// Symbol devuelve el glifo actual (pintado por la escena, o el base).
func (c *Character) Symbol() string { return c.symbol }

// IsVisible indica si el carácter se dibuja en el frame.
func (c *Character) IsVisible() bool { return c.visible }

// IsActive indica si el carácter tiene una escena reproduciéndose.
func (c *Character) IsActive() bool { return c.active }

// ActivateScene descarta la escena anterior (si la había) y empieza a
// reproducir la nueva desde el principio.
func (c *Character) ActivateScene(s *Scene) {
	if s == nil || len(s.frames) == 0 {
		// Una escena vacía no tiene nada que reproducir.
		c.scene = nil
		c.active = false
		c.symbol = c.inputSymbol
		return
	}
	s.playhead = 0
	c.scene = s
	c.active = true
	c.symbol = s.symbolAt(0)
}

// Tick avanza la escena del carácter una unidad. Cuando la escena llega al
// final se descarta: el carácter vuelve a su glifo base con active=false y
// queda disponible para reactivarse en el siguiente tick.
func (c *Character) Tick() {
	if !c.active || c.scene == nil {
		return
	}
	c.scene.playhead++
	if c.scene.playhead >= c.scene.length() {
		c.scene = nil
		c.active = false
		c.symbol = c.inputSymbol
		return
	}
	c.symbol = c.scene.symbolAt(c.scene.playhead)
}
