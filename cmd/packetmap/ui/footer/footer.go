package footer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model holds the footer's state: a status line showing the current
// map zoom level and the callsign of the most recently plotted packet.
type Model struct {
	width int

	mapShapePath string
	zoom         float64
	lastPacket   string
}

// New creates a new footer model for the given shapefile.
func New(mapShapePath string) Model {
	return Model{
		width:        80,
		mapShapePath: mapShapePath,
		zoom:         1.0,
	}
}

// SetZoom records the map's current zoom level for display.
func (m *Model) SetZoom(zoom float64) {
	m.zoom = zoom
}

// SetLastPacket records the callsign of the most recently plotted packet.
func (m *Model) SetLastPacket(callsign string) {
	m.lastPacket = callsign
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	status := fmt.Sprintf("Zoom: %.2fx", m.zoom)
	if m.lastPacket != "" {
		status = fmt.Sprintf("%s  |  Last: %s", status, m.lastPacket)
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("250")).
		Width(m.width)

	return style.Render(status)
}
