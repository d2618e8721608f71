package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/patterns"
)

// MenuItem represents a selectable board in the picker.
type MenuItem struct {
	Title   string
	Width   int
	Height  int
	Mines   int
	Preset  config.Preset     // Set for classic boards
	Pattern *patterns.Pattern // Set for custom layouts
}

// GameID returns the registry mode that plays this item.
func (i MenuItem) GameID() string {
	if i.Pattern != nil {
		return string(minesweeper.ModeCustom)
	}
	return string(minesweeper.ModeClassic)
}

// Apply selects the item's preset or pattern for the next game created.
func (i MenuItem) Apply() {
	if i.Pattern != nil {
		minesweeper.SetPattern(*i.Pattern)
		return
	}
	minesweeper.ClearPattern()
	minesweeper.SetPreset(i.Preset)
}

// BuildMenuItems lists the configured presets followed by pattern layouts.
func BuildMenuItems(cfg config.SweeperConfig, pats []patterns.Pattern) []MenuItem {
	items := make([]MenuItem, 0, len(cfg.Presets)+len(pats))
	for _, p := range cfg.Presets {
		items = append(items, MenuItem{
			Title:  p.Name,
			Width:  p.Width,
			Height: p.Height,
			Mines:  p.Mines,
			Preset: p,
		})
	}
	for _, p := range pats {
		w, h := p.Size()
		items = append(items, MenuItem{
			Title:   p.Name,
			Width:   w,
			Height:  h,
			Mines:   p.Mines(),
			Pattern: &p,
		})
	}
	return items
}

// MenuKeyMap defines the key bindings for the board picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the board picker.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem // Set when user selects a board
}

// NewMenuModel creates a new menu model.
func NewMenuModel(items []MenuItem, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  items,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		config: cfg,
	}
	m.help.Width = cfg.ScreenW
	m.table = m.createTable()
	return m
}

// createTable creates the board table.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Board", Width: 20},
		{Title: "Size", Width: 8},
		{Title: "Mines", Width: 6},
		{Title: "Mode", Width: 8},
	}

	rows := make([]table.Row, len(m.items))
	for i, item := range m.items {
		rows[i] = table.Row{
			item.Title,
			fmt.Sprintf("%dx%d", item.Width, item.Height),
			fmt.Sprintf("%d", item.Mines),
			item.GameID(),
		}
	}

	// Leave room for title, description, help and margins
	height := min(len(rows)+1, max(m.config.ScreenH-8, 3))

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = currentTheme.TableHeader
	s.Selected = currentTheme.TableSelected
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit // Exit menu to start game
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(currentTheme.MenuTitle.Render("M I N E S W E E P E R"), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(currentTheme.MenuDescription.Render("Pick a board"), m.config.ScreenW))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No boards configured.", m.config.ScreenW))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(currentTheme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item   *MenuItem
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the board picker and returns the selection result.
func RunMenu(items []MenuItem, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(items, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Item = m.Selected()
	return result, nil
}
