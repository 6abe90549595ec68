package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model runs an Editor as a Bubble Tea program.
type Model struct {
	ed *Editor
}

func NewModel(ed *Editor) Model {
	return Model{ed: ed}
}

func (m Model) Editor() *Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ed.Handle(ResizeCommand(Size{Width: msg.Width, Height: msg.Height}))
	case tea.KeyMsg:
		for _, cmd := range m.ed.KeyMap().Commands(msg) {
			m.ed.Handle(cmd)
			if m.ed.ShouldQuit() {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	return RenderFrame(m.ed.Frame(), m.ed.Style())
}
