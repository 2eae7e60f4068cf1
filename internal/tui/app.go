package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/moltenlabs/brand/brand"
	"github.com/moltenlabs/brand/color"
	"github.com/moltenlabs/brand/colors"
	"github.com/moltenlabs/brand/internal/ui"
	"github.com/moltenlabs/brand/tokens"
)

// NamespaceAll is the pseudo namespace listing every token.
const NamespaceAll = "all"

// AppState represents the current UI state
type AppState int

const (
	StateNormal AppState = iota
	StateFilter
)

// Model is the main Bubble Tea model
type Model struct {
	keys   KeyMap
	styles Styles
	swatch string

	// Window dimensions
	width  int
	height int

	// Token list state
	namespaces []string
	tab        int
	items      []color.Named
	selected   int

	// UI state
	state     AppState
	statusMsg string

	// Sub-components
	textInput textinput.Model
	viewport  viewport.Model
	help      help.Model
}

// New creates a browser over the token registry. swatch is the glyph
// used to paint colors.
func New(swatch string) Model {
	ti := textinput.New()
	ti.Prompt = ui.IconFilter + " "
	ti.Placeholder = "name or hex"
	ti.CharLimit = 64
	ti.Width = 30

	vp := viewport.New(40, 20)

	m := Model{
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		swatch:     swatch,
		namespaces: append([]string{NamespaceAll}, tokens.Namespaces()...),
		textInput:  ti,
		viewport:   vp,
		help:       help.New(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Namespace returns the active namespace tab.
func (m Model) Namespace() string {
	return m.namespaces[m.tab]
}

// Items returns the tokens currently listed.
func (m Model) Items() []color.Named {
	return m.items
}

// Selected returns the highlighted token, if any.
func (m Model) Selected() (color.Named, bool) {
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected], true
	}
	return color.Named{}, false
}

// State returns the current input state.
func (m Model) State() AppState {
	return m.state
}

// refresh rebuilds the list from the active namespace and filter.
func (m *Model) refresh() {
	items := tokens.Colors()
	if ns := m.Namespace(); ns != NamespaceAll {
		items = tokens.InNamespace(ns)
	}

	if q := strings.ToLower(strings.TrimSpace(m.textInput.Value())); q != "" {
		items = lo.Filter(items, func(n color.Named, _ int) bool {
			return strings.Contains(n.Name, q) || strings.Contains(n.Color.Hex(), strings.TrimPrefix(q, "#"))
		})
	}

	m.items = items
	if m.selected >= len(m.items) {
		m.selected = max(0, len(m.items)-1)
	}
	m.syncDetail()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width/2 - 4
		m.viewport.Height = max(1, msg.Height-4)
		m.syncDetail()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFilter:
		return m.handleFilterKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.syncDetail()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
			m.syncDetail()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.syncDetail()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, len(m.items)-1)
		m.syncDetail()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(1), nil

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(-1), nil

	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.statusMsg = ""
		cmd := m.textInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.textInput.Value() != "" {
			m.textInput.Reset()
			m.statusMsg = "Filter cleared"
			m.refresh()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.state = StateNormal
		m.textInput.Blur()
		m.statusMsg = fmt.Sprintf("%d tokens match %q", len(m.items), m.textInput.Value())
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.state = StateNormal
		m.textInput.Blur()
		m.textInput.Reset()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.selected = 0
	m.refresh()
	return m, cmd
}

func (m Model) switchTab(delta int) Model {
	n := len(m.namespaces)
	m.tab = ((m.tab+delta)%n + n) % n
	m.selected = 0
	m.statusMsg = ""
	m.refresh()
	return m
}

// syncDetail loads the selected token into the detail viewport.
func (m *Model) syncDetail() {
	m.viewport.SetContent(m.renderDetail(m.viewport.Width))
	m.viewport.GotoTop()
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var footer string
	if m.state == StateFilter {
		footer = m.styles.FilterPrompt.Render(m.textInput.View())
	} else {
		footer = m.styles.Footer.Render(m.help.View(m.keys))
	}

	// Calculate layout - reserve lines for header, tabs, footer and status
	listWidth := m.width / 2
	detailWidth := m.width - listWidth
	contentHeight := max(1, m.height-3-lipgloss.Height(footer))

	header := m.styles.Header.Render(
		fmt.Sprintf("%s tokens %s %d", brand.Company, ui.IconSeparator, len(m.items)),
	)

	listPanel := m.styles.ListPanel.
		Width(listWidth).
		Render(m.renderList(listWidth-2, contentHeight))

	detailPanel := m.styles.DetailPanel.
		Width(detailWidth).
		Render(m.viewport.View())

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)

	status := m.styles.StatusBar.Render(m.statusMsg)

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderTabs(),
		content,
		footer,
		status,
	)

	// Force exact terminal height to prevent scrolling issues
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.namespaces))
	for i, ns := range m.namespaces {
		if i == m.tab {
			tabs[i] = m.styles.ActiveTab.Render(ns)
		} else {
			tabs[i] = m.styles.Tab.Render(ns)
		}
	}
	line := strings.Join(tabs, "")
	if m.width > 0 && lipgloss.Width(line) > m.width {
		// Too many tabs for the window; show the active one with its position.
		line = m.styles.ActiveTab.Render(fmt.Sprintf("%s %d/%d", m.Namespace(), m.tab+1, len(m.namespaces)))
	}
	return line
}

func (m Model) renderList(width, height int) string {
	var lines []string

	if len(m.items) == 0 {
		lines = append(lines, "No matching tokens")
	} else {
		// Keep the selection visible
		start := 0
		if m.selected >= height {
			start = m.selected - height + 1
		}

		for i := start; i < len(m.items) && i < start+height; i++ {
			item := m.items[i]

			name := item.Name
			hex := item.Color.Hex()
			// Reserve room for the swatch, spaces and hex column
			room := width - runewidth.StringWidth(m.swatch) - len(hex) - 3
			if room > 0 && runewidth.StringWidth(name) > room {
				name = runewidth.Truncate(name, room, "...")
			}
			name = runewidth.FillRight(name, max(room, 0))

			var text string
			if i == m.selected {
				text = m.styles.SelectedItem.Render(ui.IconSelected + name + " " + hex)
			} else {
				text = " " + m.styles.NormalItem.Render(name) + " " + m.styles.Hex.Render(hex)
			}
			lines = append(lines, ui.Swatch(item.Color, m.swatch)+" "+text)
		}
	}

	// Pad to fill height to prevent layout shifts
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderDetail(width int) string {
	item, ok := m.Selected()
	if !ok {
		return "No token selected"
	}
	c := item.Color

	var lines []string
	lines = append(lines,
		m.styles.DetailTitle.Render(item.Name),
		strings.Repeat("─", max(1, min(width, 40))),
	)

	block := strings.Repeat(m.swatch, 4)
	lines = append(lines, ui.Swatch(c, block), ui.Swatch(c, block), "")

	row := func(label, value string) {
		lines = append(lines, m.styles.Label.Render(label)+value)
	}
	row("hex", c.Hex())
	row("rgb", c.ToRGB().String())
	row("rgba", c.ToRGBA().CSS())
	row("opacity", fmt.Sprintf("%s %.0f%%", ui.TokenIcon(c.Opaque()), float64(c.ToRGBA().Alpha())*100))
	row("luminance", fmt.Sprintf("%.4f", c.Luminance()))

	flat := ui.Flatten(c)
	lines = append(lines, "")
	row("on surface", contrastLine(flat.Contrast(colors.Surface.Base)))
	row("on text", contrastLine(flat.Contrast(colors.Text.Primary)))
	if !c.Opaque() {
		row("flattened", flat.Hex())
	}

	return strings.Join(lines, "\n")
}

func contrastLine(ratio float64) string {
	return fmt.Sprintf("%.2f:1 AA %s AAA %s", ratio, ui.ResultIcon(ratio >= 4.5), ui.ResultIcon(ratio >= 7))
}
