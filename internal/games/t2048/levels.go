// Package t2048 adapts the 2048 engine to the platform with classic,
// campaign and endless modes.
package t2048

// Level is one campaign stage.
type Level struct {
	Name     string
	Target   int     // Tile that clears the level on a 4x4 board
	ProbFour float64 // Chance that a spawned tile is a 4
}

// campaign lists the stages in play order. Late stages hold the target and
// raise the chance of 4s instead.
var campaign = []Level{
	{Name: "Warm-up", Target: 128, ProbFour: 0.10},
	{Name: "Getting Started", Target: 256, ProbFour: 0.10},
	{Name: "Building Momentum", Target: 512, ProbFour: 0.10},
	{Name: "The Climb", Target: 1024, ProbFour: 0.10},
	{Name: "Classic 2048", Target: 2048, ProbFour: 0.10},
	{Name: "Beyond Limits", Target: 4096, ProbFour: 0.12},
	{Name: "Master Class", Target: 8192, ProbFour: 0.15},
	{Name: "Expert Challenge", Target: 8192, ProbFour: 0.18},
	{Name: "Grandmaster", Target: 8192, ProbFour: 0.20},
	{Name: "Ultimate Champion", Target: 8192, ProbFour: 0.25},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(campaign)
}

// LevelAt returns the level at a 0-based index.
func LevelAt(index int) (Level, bool) {
	if index < 0 || index >= len(campaign) {
		return Level{}, false
	}
	return campaign[index], true
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(campaign))
	for i, lvl := range campaign {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the 4x4 targets of all levels.
func LevelTargets() []int {
	targets := make([]int, len(campaign))
	for i, lvl := range campaign {
		targets[i] = lvl.Target
	}
	return targets
}

// MaxReachableTile is the largest tile a rows x cols board can hold: every
// cell filled with a descending power-of-two staircase topped by a 4 spawn.
func MaxReachableTile(rows, cols int) int {
	cells := rows * cols
	if cells <= 0 {
		return 0
	}
	if cells > 30 {
		cells = 30
	}
	return 1 << (cells + 1)
}

// TargetFor scales the level target down to what a small board can reach.
func (l Level) TargetFor(rows, cols int) int {
	return min(l.Target, MaxReachableTile(rows, cols))
}
