// Package registry keeps the playable modes. Mode packages register a
// factory from init(), so the CLI, menus and SSH sessions can list and
// create modes by ID without importing them directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui2048/internal/core"
)

// ErrUnknownMode is returned by Create for an unregistered ID.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Game is the contract between a mode and the platform. Implementations hold
// pure game logic; the platform owns input mapping, timing and drawing to
// the terminal.
type Game interface {
	// ID is the stable key used by the CLI and score storage ("2048", "2048_endless").
	ID() string

	// Title is the display name ("2048 (Endless)").
	Title() string

	// Reset starts a new run. The config carries screen size, the RNG seed
	// and the best score known to storage.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game the screen changed size. The run continues.
	Resize(w, h int)

	// Step advances one tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score, best score and run status.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, not yet Reset, game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. The title is read from one throwaway instance.
// Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return e.factory(), nil
}

// Title returns the registered title for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
