package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/registry"
	"github.com/vovakirdan/tui2048/internal/storage"
)

// boardReporter is implemented by games that can report their board size
// for run records.
type boardReporter interface {
	BoardDims() (rows, cols int)
}

// Model is the Bubble Tea model for running a 2048 mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	embedded   bool   // Running inside a SessionModel: back returns to its menu
	backToMenu bool   // User asked to leave the game for the menu
	scoreSaved bool   // Whether the run has been saved for current game over
	lastRunID  string // ID of the last saved run
	status     string // One-line notice drawn on the bottom row
	statusLeft int    // Ticks until the notice disappears
}

// statusTicks is how long a notice stays up, in ticks at the default rate.
const statusTicks = 150

// NewModel creates a new Bubble Tea model for the given game.
// The stored high score for the mode seeds the best score.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			cfg.BestScore = max(cfg.BestScore, high)
		}
	}

	// Initialize the game here so the first View has a board.
	game.Reset(cfg)

	keyMapper := NewKeyMapper()
	for key, action := range cfg.KeyBindings {
		keyMapper.Bind(key, action)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keyMapper:  keyMapper,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Screenshots write to the local disk, so SSH sessions do not get them.
	if msg.String() == "ctrl+s" && !m.embedded {
		if path, err := m.saveScreenshot(); err != nil {
			m.notify("Screenshot failed: " + err.Error())
		} else {
			m.notify("Saved " + path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.BestScore = m.gameState.BestScore
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.lastRunID = saveRun(m.store, m.game, m.gameState)
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	if m.statusLeft > 0 {
		m.statusLeft--
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) notify(msg string) {
	m.status = msg
	m.statusLeft = statusTicks
}

// saveRun records a finished run. Best-effort: failures return "".
func saveRun(store *storage.Store, game registry.Game, st core.GameState) string {
	if store == nil || st.Score == 0 {
		return ""
	}

	run := storage.RunResult{
		GameID:  game.ID(),
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Moves:   st.Moves,
	}
	if br, ok := game.(boardReporter); ok {
		run.Rows, run.Cols = br.BoardDims()
	}

	runID, err := store.SaveRun(run)
	if err != nil {
		return ""
	}
	return runID
}

// saveScreenshot writes the current screen as plain text under
// ~/.tui2048/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the ID of the most recently saved run, or "".
func (m Model) LastRunID() string {
	return m.lastRunID
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.statusLeft > 0 {
		m.screen.DrawTextColor(0, m.screen.Height()-1, m.status, core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// Run plays one game in a Bubble Tea program and returns the ID of the
// run it saved, if any.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (runID string, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := finalModel.(Model); ok {
		return m.LastRunID(), nil
	}
	return "", nil
}
