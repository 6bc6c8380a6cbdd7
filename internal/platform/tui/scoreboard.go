package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui2048/internal/registry"
	"github.com/vovakirdan/tui2048/internal/storage"
)

const maxScores = 100 // Max runs loaded per mode

// scoreOrder is the sort applied to the loaded runs.
type scoreOrder int

const (
	byScore scoreOrder = iota
	byTile
	byRecent
)

func (o scoreOrder) String() string {
	switch o {
	case byTile:
		return "tile"
	case byRecent:
		return "recent"
	default:
		return "score"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Sort     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Sort, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Sort, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	sbFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
// It shows the finished runs of one mode at a time.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	order     scoreOrder
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	lastRun   *storage.ScoreEntry // Run to highlight, set by FocusRun
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Board", Width: 6},
		{Title: "Date", Width: 12},
	}
	// Spare width goes to the date column
	if spare := m.width - 60; spare > 0 {
		columns[len(columns)-1].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// modeID returns the selected mode, or "" with no registered modes.
func (m ScoreboardModel) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// load reads the selected mode's runs and stats from the store.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if id := m.modeID(); id != "" && m.store != nil {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.sortScores()
	m.fillTable()
}

func (m *ScoreboardModel) sortScores() {
	switch m.order {
	case byTile:
		slices.SortStableFunc(m.scores, func(a, b storage.ScoreEntry) int {
			if a.MaxTile != b.MaxTile {
				return b.MaxTile - a.MaxTile
			}
			return b.Score - a.Score
		})
	case byRecent:
		slices.SortStableFunc(m.scores, func(a, b storage.ScoreEntry) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	default:
		slices.SortStableFunc(m.scores, func(a, b storage.ScoreEntry) int {
			return b.Score - a.Score
		})
	}
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.MaxTile),
			fmt.Sprintf("%d", s.Moves),
			boardLabel(s),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func boardLabel(s storage.ScoreEntry) string {
	if s.Rows <= 0 || s.Cols <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.shiftMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.shiftMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.order = (m.order + 1) % 3
			m.sortScores()
			m.fillTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// FocusRun looks up a finished run, switches to its mode and puts the
// cursor on it when it made the loaded list.
func (m *ScoreboardModel) FocusRun(runID string) {
	if runID == "" || m.store == nil {
		return
	}
	run, err := m.store.RunByID(runID)
	if err != nil || run == nil {
		return
	}
	m.lastRun = run

	i := slices.IndexFunc(m.modes, func(g registry.GameInfo) bool { return g.ID == run.GameID })
	if i < 0 {
		return
	}
	if i != m.mode {
		m.mode = i
		m.load()
	}
	if pos := m.indexOf(runID); pos >= 0 {
		m.table.SetCursor(pos)
	}
}

func (m ScoreboardModel) indexOf(runID string) int {
	return slices.IndexFunc(m.scores, func(s storage.ScoreEntry) bool { return s.RunID == runID })
}

// lastRunLine ranks the focused run among the loaded runs of its mode.
func (m ScoreboardModel) lastRunLine() string {
	if m.lastRun == nil || m.lastRun.GameID != m.modeID() {
		return ""
	}
	run := m.lastRun
	if m.indexOf(run.RunID) < 0 {
		return fmt.Sprintf("Last run: %d pts, tile %d (outside top %d)", run.Score, run.MaxTile, maxScores)
	}
	rank := 1
	for _, s := range m.scores {
		if s.Score > run.Score {
			rank++
		}
	}
	return fmt.Sprintf("Last run: %d pts, tile %d, #%d of %d", run.Score, run.MaxTile, rank, len(m.scores))
}

func (m *ScoreboardModel) shiftMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(sbMutedStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render(m.lastRunLine()), m.width))
	b.WriteString("\n")

	b.WriteString(centerText(sbFrameStyle.Render(m.body()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.selectedLine(), m.width))
	b.WriteString("\n")
	b.WriteString(sbMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per mode with the selected one highlighted.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = sbActiveStyle.Render(g.Title)
		} else {
			parts[i] = sbMutedStyle.Render(" " + g.Title + " ")
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.modes[m.mode].Title)
	}
	return line
}

// statsLine summarizes the selected mode's runs.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return fmt.Sprintf("sorted by %s", m.order)
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Best tile: %d  Avg: %.0f  (sorted by %s)",
		m.stats.GamesCount, m.stats.HighScore, m.stats.BestTile, m.stats.AvgScore, m.order)
}

func (m ScoreboardModel) body() string {
	if len(m.scores) == 0 {
		return sbMutedStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// selectedLine describes the run under the table cursor.
func (m ScoreboardModel) selectedLine() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.scores) {
		return ""
	}
	s := m.scores[i]
	runID := s.RunID
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return sbMutedStyle.Render(fmt.Sprintf("run %s  %s board  %d moves  %s",
		runID, boardLabel(s), s.Moves, s.CreatedAt.Format("2006-01-02 15:04:05")))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen, focused on lastRunID when set.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, lastRunID string) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)
	model.FocusRun(lastRunID)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
