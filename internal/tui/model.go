package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Model is the Bubbletea model for the dump viewer.
type Model struct {
	dump     Dump
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	keys   KeyMap
	help   help.Model
	styles Styles
}

// NewModel creates a viewer for a formatted dump.
func NewModel(d Dump) Model {
	return Model{
		dump:   d,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		bodyHeight := msg.Height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.viewport.SetContent(strings.Join(m.dump.Lines, "\n"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		// Handled keys return early so the viewport's own bindings
		// don't scroll a second time.
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.ViewUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.ViewDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	title := m.styles.Title.Render("hexglow")
	name := m.styles.TitleBar.Width(max(0, m.width-lipgloss.Width(title))).Render(m.dump.Name)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, name)
}

func (m Model) footerView() string {
	status := m.styles.StatusBar.Width(m.width).Render(
		m.styles.StatusKey.Render("size") +
			m.styles.StatusValue.Render(humanize.Bytes(uint64(m.dump.Size))) +
			m.styles.StatusKey.Render("rows") +
			m.styles.StatusValue.Render(fmt.Sprintf("%d", len(m.dump.Lines))) +
			m.styles.StatusKey.Render("pos") +
			m.styles.StatusValue.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)),
	)
	return status + "\n" + m.styles.Help.Render(m.help.View(m.keys))
}
