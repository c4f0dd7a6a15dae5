// shared/layout.go
package shared

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderPreview compone la vista del frame actual en un solo string: el frame
// dentro de un borde, con una línea de estado debajo. Recibe todo lo que
// necesita para renderizar como argumentos.
func RenderPreview(width int, frame, status string, borderStyle lipgloss.Style) string {
	if width == 0 {
		return "Initializing..."
	}

	framed := borderStyle.Width(width - 2).Render(frame)
	statusLine := lipgloss.NewStyle().Faint(true).Render(status)

	return lipgloss.JoinVertical(lipgloss.Left, framed, statusLine)
}
