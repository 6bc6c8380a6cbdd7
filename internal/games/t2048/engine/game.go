package engine

import "fmt"

// DefaultWinTile is the tile value that wins a classic game.
const DefaultWinTile = 2048

// Config describes a game's board and rules.
type Config struct {
	Rows       int
	Cols       int
	WinTile    int // 0 disables winning
	StartTiles int // tiles spawned by Start
}

// DefaultConfig returns the classic 4x4 rules.
func DefaultConfig() Config {
	return Config{
		Rows:       4,
		Cols:       4,
		WinTile:    DefaultWinTile,
		StartTiles: 2,
	}
}

// State is the play state of a game.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of collapsing every line for one direction.
type MoveResult struct {
	Score int  // Sum of merged values
	Moved bool // Whether any cell changed
}

// Outcome is the result of a full turn: move, spawn, then terminal checks.
type Outcome struct {
	MoveResult
	Spawned bool
	State   State
}

// Game owns a grid plus the score, best score and play state.
type Game struct {
	cfg     Config
	grid    *Grid
	spawner Spawner

	score int
	best  int
	moves int
	state State
}

// NewGame creates a game. Start must be called before playing.
func NewGame(cfg Config, spawner Spawner) (*Game, error) {
	grid, err := NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if cfg.WinTile != 0 && !isTileValue(cfg.WinTile) {
		return nil, ErrInvalidValue
	}
	if cfg.StartTiles < 0 {
		cfg.StartTiles = 0
	}

	return &Game{
		cfg:     cfg,
		grid:    grid,
		spawner: spawner,
	}, nil
}

// Config returns the rules the game was created with.
func (g *Game) Config() Config {
	return g.cfg
}

// Grid gives read access to the board for rendering.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Start clears the board and spawns the starting tiles.
func (g *Game) Start() {
	g.grid.Clear()
	g.moves = 0
	g.state = StatePlaying
	for range g.cfg.StartTiles {
		g.Spawn()
	}
}

// Reset folds the current score into the best score and starts over.
func (g *Game) Reset() {
	g.best = g.BestScore()
	g.score = 0
	g.Start()
}

// Move collapses every column (Up/Down) or every row (Left/Right) and adds
// the merge gains to the score. It does not spawn. Every line is
// collapsed even when earlier ones do not change. An unknown direction panics.
func (g *Game) Move(dir Direction) MoveResult {
	var result MoveResult

	for i := range g.grid.lineCount(dir) {
		score, moved := g.grid.collapse(g.grid.line(dir, i))
		result.Score += score
		result.Moved = result.Moved || moved
	}

	g.score += result.Score
	if result.Moved {
		g.moves++
	}
	return result
}

// Spawn inserts one tile chosen by the spawner. It returns false, leaving
// the board untouched, when there is no empty cell or no spawner.
// A spawner that picks an occupied cell or an invalid value panics.
func (g *Game) Spawn() bool {
	empty := g.grid.EmptyCells()
	if len(empty) == 0 || g.spawner == nil {
		return false
	}

	pos, value := g.spawner.Pick(empty)
	if err := g.Insert(pos.Row, pos.Col, value); err != nil {
		panic(fmt.Sprintf("engine: spawner picked (%d,%d)=%d: %v", pos.Row, pos.Col, value, err))
	}
	return true
}

// Insert places value at an empty cell.
func (g *Game) Insert(row, col, value int) error {
	if !isTileValue(value) {
		return ErrInvalidValue
	}
	empty, err := g.grid.IsEmpty(row, col)
	if err != nil {
		return err
	}
	if !empty {
		return ErrOccupied
	}
	return g.grid.SetTile(row, col, value)
}

// CheckWin reports whether any tile equals the win tile.
func (g *Game) CheckWin() bool {
	if g.cfg.WinTile == 0 {
		return false
	}
	for _, t := range g.grid.tiles {
		if t.Value == g.cfg.WinTile {
			return true
		}
	}
	return false
}

// CheckLoss reports whether no move can change the board: there are no
// empty cells and no two adjacent tiles share a value.
func (g *Game) CheckLoss() bool {
	for _, t := range g.grid.tiles {
		if t.Empty() {
			return false
		}
		neighbors, _ := g.grid.AdjacentTiles(t.Row, t.Col)
		for _, n := range neighbors {
			if n.Value == t.Value {
				return false
			}
		}
	}
	return true
}

// Play runs one turn: move, spawn if the board changed, then update state.
// Turns after the game has ended are ignored.
func (g *Game) Play(dir Direction) Outcome {
	if g.state != StatePlaying {
		return Outcome{State: g.state}
	}

	out := Outcome{MoveResult: g.Move(dir)}
	if out.Moved {
		out.Spawned = g.Spawn()
	}

	switch {
	case g.CheckWin():
		g.state = StateWon
	case g.CheckLoss():
		g.state = StateLost
	}
	out.State = g.state
	return out
}

// State returns the play state.
func (g *Game) State() State {
	return g.state
}

// Score returns the points gained since the last reset.
func (g *Game) Score() int {
	return g.score
}

// BestScore returns the higher of the stored best and the live score.
func (g *Game) BestScore() int {
	return max(g.best, g.score)
}

// SetBestScore seeds the best score, e.g. from persistent storage.
// Lower values than the current best are ignored.
func (g *Game) SetBestScore(best int) {
	g.best = max(g.best, best)
}

// Moves returns the number of board-changing moves since Start.
func (g *Game) Moves() int {
	return g.moves
}

// isTileValue reports whether v is a power of two >= 2.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
