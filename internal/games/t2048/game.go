package t2048

import (
	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// levelClearDelay is how long the level cleared banner stays up, in ticks.
const levelClearDelay = 120

// Game implements registry.Game for 2048 on top of the engine.
type Game struct {
	mode    Mode
	cfg     config.T2048Config
	engine  *engine.Game
	spawner *engine.RandomSpawner
	tick    uint64

	difficulty config.DifficultyPreset // Overrides the package-level preset when set

	levelIndex    int // Current level (0-indexed)
	startLevel    int // Level for the next Reset (1-indexed), 0 = unset
	currentTarget int // Tile that ends the run or level, 0 = none

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard").
// Unknown values fall back to the config file.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// StartAtLevel makes the next Reset begin at the given campaign level (1-10).
// Restarts after that begin at level 1.
func (g *Game) StartAtLevel(level int) {
	g.startLevel = level
}

// UseDifficulty overrides the package-level difficulty preset for this
// instance. It takes effect when the first Reset builds the engine.
func (g *Game) UseDifficulty(p config.DifficultyPreset) {
	g.difficulty = p
}

// New creates a classic 2048 game: reach the configured win tile.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewCampaign creates a campaign game with ascending level targets.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a game that never ends in a win.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_campaign", func() registry.Game {
		return NewCampaign()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeCampaign:
		return "2048_campaign"
	case ModeEndless:
		return "2048_endless"
	default:
		return "2048"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeCampaign:
		return "2048 (Campaign)"
	case ModeEndless:
		return "2048 (Endless)"
	default:
		return "2048"
	}
}

// Reset initializes or restarts the game.
// The first call builds the engine and seeds its RNG. Later calls restart
// the same engine so the best score carries over.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	if g.engine == nil {
		g.build(rc.Seed)
	}
	g.engine.SetBestScore(rc.BestScore)

	// Apply selected start level (campaign only)
	g.levelIndex = 0
	if g.mode == ModeCampaign {
		start := g.startLevel
		g.startLevel = 0
		if start > 0 && start <= LevelCount() {
			g.levelIndex = start - 1
		}
	}
	g.loadLevel()

	g.engine.Reset()
	g.checkStart()
	g.checkScreenSize()
}

// checkStart ends a run whose starting board is already decided, e.g. a
// 1x1 board or one filled entirely by the start tiles.
func (g *Game) checkStart() {
	switch {
	case g.engine.CheckWin():
		g.won = true
		g.gameOver = true
	case g.engine.CheckLoss():
		g.gameOver = true
	}
}

// build loads the YAML config and creates the engine.
func (g *Game) build(seed int64) {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	preset := difficultyPreset
	if g.difficulty != "" {
		preset = g.difficulty
	}
	config.ApplyT2048Preset(&cfg, preset)
	g.cfg = cfg

	ecfg := engine.Config{
		Rows:       cfg.Board.Rows,
		Cols:       cfg.Board.Cols,
		WinTile:    cfg.Rules.WinTile,
		StartTiles: cfg.Rules.StartTiles,
	}
	// Campaign targets are checked here, endless never wins.
	if g.mode != ModeClassic {
		ecfg.WinTile = 0
	}

	g.spawner = engine.NewSeededSpawner(seed, cfg.Spawn.ProbFour)
	eng, err := engine.NewGame(ecfg, g.spawner)
	if err != nil {
		def := engine.DefaultConfig()
		if g.mode != ModeClassic {
			def.WinTile = 0
		}
		eng, _ = engine.NewGame(def, g.spawner)
	}
	g.engine = eng
}

// loadLevel sets up the current target and spawn policy.
func (g *Game) loadLevel() {
	switch g.mode {
	case ModeEndless:
		g.currentTarget = 0
		g.spawner.SetProbFour(g.cfg.Spawn.ProbFour)
	case ModeClassic:
		g.currentTarget = g.engine.Config().WinTile
		g.spawner.SetProbFour(g.cfg.Spawn.ProbFour)
	default:
		level, ok := LevelAt(g.levelIndex)
		if !ok {
			level, _ = LevelAt(LevelCount() - 1)
		}
		grid := g.engine.Grid()
		g.currentTarget = level.TargetFor(grid.Rows(), grid.Cols())
		g.spawner.SetProbFour(level.ProbFour)
	}
}

// Resize records the new screen size. The board is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	screen := core.NewRect(0, 0, g.screenW, g.screenH)
	g.tooSmall = !screen.Fits(max(boardW, minHUDWidth), boardH+hudHeight+1)
}

// Step advances the game by one tick. At most one move is made per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	out := g.engine.Play(dir)
	// A dead board reports a loss without moving.
	if out.Moved || out.State != engine.StatePlaying {
		g.afterMove(out.State)
	}

	return core.StepResult{State: g.State(), Moved: out.Moved}
}

// directionFor maps the first directional action in the frame to a Direction.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	a, ok := in.First(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight)
	if !ok {
		return 0, false
	}
	return moveKeys[a], true
}

var moveKeys = map[core.Action]engine.Direction{
	core.ActionUp:    engine.DirUp,
	core.ActionDown:  engine.DirDown,
	core.ActionLeft:  engine.DirLeft,
	core.ActionRight: engine.DirRight,
}

func (g *Game) afterMove(state engine.State) {
	switch state {
	case engine.StateWon:
		g.won = true
		g.gameOver = true
		return
	case engine.StateLost:
		g.gameOver = true
		return
	}

	// Check for level target (campaign only)
	if g.mode == ModeCampaign && g.engine.Grid().MaxValue() >= g.currentTarget {
		g.levelCleared = true
		g.levelClearTicks = 0
	}
}

// advanceLevel moves to the next level, keeping board and score. Levels
// whose target is already on the board are skipped.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	for {
		if g.levelIndex >= LevelCount()-1 {
			// Completed all levels
			g.won = true
			g.gameOver = true
			return
		}

		g.levelIndex++
		g.loadLevel()
		if g.engine.Grid().MaxValue() < g.currentTarget {
			return
		}
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Game {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.engine.Score(),
		BestScore: g.engine.BestScore(),
		MaxTile:   g.engine.Grid().MaxValue(),
		Moves:     g.engine.Moves(),
		GameOver:  g.gameOver,
		Won:       g.won,
		Paused:    g.paused || g.tooSmall || g.levelCleared,
	}
}

// BoardDims returns the board size in rows and columns.
func (g *Game) BoardDims() (rows, cols int) {
	if g.engine == nil {
		return 0, 0
	}
	return g.engine.Grid().Rows(), g.engine.Grid().Cols()
}
