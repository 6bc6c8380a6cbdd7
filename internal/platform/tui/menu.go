package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/games/t2048"
	"github.com/vovakirdan/tui2048/internal/registry"
	"github.com/vovakirdan/tui2048/internal/storage"
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Best        int  // Stored high score, 0 if none
	LevelSelect bool // Opens the campaign level list instead of a game
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	levels         levelPicker
	inLevelSelect  bool
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	startLevel     int       // Campaign level picked from the level list
	difficulty     int       // Index into difficulties
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// campaignID is the registry ID the level list starts.
const campaignID = "2048_campaign"

// difficulties are the choices cycled with Left/Right. The empty preset
// keeps whatever the config file and --difficulty say.
var difficulties = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

func difficultyLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "default"
	}
	return string(p)
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil {
				item.Best = high
			}
		}
		items = append(items, item)
	}

	if registry.Exists(campaignID) {
		items = append(items, MenuItem{
			GameID:      campaignID,
			Title:       "Select Level...",
			LevelSelect: true,
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inLevelSelect {
		level, back := m.levels.handle(action)
		switch {
		case back:
			m.inLevelSelect = false
		case level > 0:
			selected := m.items[m.cursor]
			m.selected = &selected
			m.startLevel = level
			return m, tea.Quit
		}
		return m, nil
	}

	switch action {
	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.cursor]
		if selected.LevelSelect {
			m.inLevelSelect = true
			m.levels = levelPicker{}
			return m, nil
		}
		m.selected = &selected
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.levels.view(m.width)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.Title
		if item.Best > 0 {
			line = fmt.Sprintf("%-22s best %d", line, item.Best)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", difficultyLabel(m.Difficulty())), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// StartLevel returns the campaign level picked from the level list, or 0.
func (m MenuModel) StartLevel() int {
	return m.startLevel
}

// Difficulty returns the preset picked with Left/Right, or "" for the default.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	StartLevel      int
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result converts the final menu state into a MenuResult.
func (m MenuModel) result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.StartLevel = m.StartLevel()
		result.Difficulty = m.Difficulty()
	}
	return result
}

// Apply configures a freshly created game with the menu's choices. Only
// this instance is affected, so concurrent sessions do not interfere.
func (r MenuResult) Apply(game registry.Game) {
	g, ok := game.(*t2048.Game)
	if !ok {
		return
	}
	if r.StartLevel > 0 {
		g.StartAtLevel(r.StartLevel)
	}
	if r.Difficulty != "" {
		g.UseDifficulty(r.Difficulty)
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

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

	return m.result(), nil
}
