// modes/tui.go
package modes

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gas/fancy-effects/effects"
	"github.com/gas/fancy-effects/logging"
	"github.com/gas/fancy-effects/shared"
	"github.com/gas/fancy-effects/shared/messages"
)

// frameTick programa el siguiente tick del efecto. El motor no sabe de
// tiempo; el ritmo lo ponemos aquí, en el host.
func frameTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return messages.FrameTickMsg(t)
	})
}

type tuiModel struct {
	iterator effects.Iterator
	interval time.Duration

	vp          viewport.Model
	frame       string
	frameCount  int
	width       int
	height      int
	ready       bool
	borderStyle lipgloss.Style
	err         error
}

func (m *tuiModel) Init() tea.Cmd {
	return frameTick(m.interval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			// El viewport nos da scroll gratis cuando el texto animado no
			// cabe en la pantalla.
			m.vp = viewport.New(msg.Width-2, msg.Height-3)
			m.ready = true
		} else {
			m.vp.Width = msg.Width - 2
			m.vp.Height = msg.Height - 3
		}
		m.vp.SetContent(m.frame)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case messages.FrameTickMsg:
		frame, err := m.iterator.Next()
		if err != nil {
			logging.Log.Printf("Error produciendo frame %d: %v", m.frameCount, err)
			m.err = err
			return m, tea.Quit
		}
		m.frame = frame
		m.frameCount++
		m.vp.SetContent(frame)
		if m.iterator.Done() {
			return m, tea.Quit
		}
		return m, frameTick(m.interval)
	}

	// Cualquier otro mensaje (scroll con flechas, rueda...) va al viewport.
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *tuiModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	if !m.ready {
		return "Initializing..."
	}
	status := fmt.Sprintf("frame %d · q para salir", m.frameCount)
	return shared.RenderPreview(m.width, m.vp.View(), status, m.borderStyle)
}

// RunTUI lanza la aplicación interactiva que anima el efecto en pantalla.
func RunTUI(res *shared.SetupResult) error {
	it, err := res.Effect.Frames()
	if err != nil {
		return err
	}

	interval := time.Duration(res.Config.General.FrameSeconds * float64(time.Second))
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}

	m := &tuiModel{
		iterator: it,
		interval: interval,
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(*tuiModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
