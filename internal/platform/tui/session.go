package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/registry"
	"github.com/vovakirdan/tui2048/internal/storage"
)

// sessionScreen is the part of a session currently on screen.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is the top-level model of one SSH connection:
// menu -> game -> menu, with the scoreboard reachable from the menu.
type SessionModel struct {
	store      *storage.Store
	logger     *log.Logger // Optional, receives finished runs
	config     core.RuntimeConfig
	username   string
	sessionID  string
	screen     sessionScreen
	menu       MenuModel
	gameModel  *Model
	scoreboard ScoreboardModel
	reported   string // Run ID already logged
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username, sessionID string) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: sessionID,
		menu:      NewMenuModel(store, cfg),
	}
}

// SessionID returns the unique ID of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the screen in front.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu drops the menu's own tea.Quit when it only means "leave the menu".
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard.FocusRun(m.reported)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}

	return m, cmd
}

func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	}
	m.menu.result().Apply(game)

	m.config = m.menu.Config()
	m.config.Seed = time.Now().UnixNano()

	gameModel := NewModel(game, m.store, m.config)
	gameModel.embedded = true
	m.gameModel = &gameModel
	m.screen = screenGame
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(Model); ok {
		m.gameModel = &gameModel
	}
	m.reportRun()

	if m.gameModel.BackToMenu() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// reportRun logs a run the first time it shows up as saved.
func (m *SessionModel) reportRun() {
	runID := m.gameModel.LastRunID()
	if runID == "" || runID == m.reported {
		return
	}
	m.reported = runID
	if m.logger == nil {
		return
	}
	st := m.gameModel.State()
	m.logger.Info("run finished",
		"session", m.sessionID,
		"user", m.username,
		"mode", m.gameModel.game.ID(),
		"run", runID,
		"score", st.Score,
		"max_tile", st.MaxTile,
		"won", st.Won,
	)
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.screen = screenMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.store, m.config)
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
