package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakepilot/internal/core"
	"github.com/vovakirdan/snakepilot/internal/search"
)

// PilotSelection holds the user's choice from the pilot menu.
type PilotSelection struct {
	Strategy search.Strategy
}

// PilotMenuModel lets users choose the search strategy for the pilot.
type PilotMenuModel struct {
	strategies []search.Strategy
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	selection  PilotSelection
	choosing   bool
	quitting   bool
	back       bool
}

// NewPilotMenuModel creates a new strategy selection model.
func NewPilotMenuModel(width, height int) PilotMenuModel {
	return PilotMenuModel{
		strategies: search.Strategies(),
		cursor:     0,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m PilotMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PilotMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PilotMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.strategies)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = PilotSelection{Strategy: m.strategies[m.cursor]}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the strategy selection.
func (m PilotMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S N A K E  P I L O T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select search strategy:", m.width))
	b.WriteString("\n\n")

	for i, s := range m.strategies {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, s.Title()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PilotMenuModel) Selected() *PilotSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m PilotMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PilotMenuModel) WantsBack() bool {
	return m.back
}

// RunPilotMenu runs the strategy selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunPilotMenu(cfg core.RuntimeConfig) (*PilotSelection, core.RuntimeConfig, error) {
	model := NewPilotMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PilotMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
