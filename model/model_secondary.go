package model

import "fmt"

func (c CellClass) Name() string {
	switch c {
	case Plain:
		return "PLAIN"
	case Forbidden:
		return "FORBIDDEN"
	case Placeable:
		return "PLACEABLE"
	default:
		return fmt.Sprintf("N/A(%d)", c)
	}
}

// Read-only accessors for renderers and input mappers.

func (m *Model) Occupied(p Pos) bool {
	return m.Cfg.InBounds(p) && m.Grid[p.Row][p.Col]
}

// RemainingLife reports the ticks left before the link at p expires, for
// fade effects. 0 for unoccupied cells.
func (m *Model) RemainingLife(p Pos) int {
	return m.Timers[p]
}

// TailLog returns up to the last n action log entries, oldest first. The
// model log itself is unbounded; truncation is a display concern.
func (m *Model) TailLog(n int) []string {
	if len(m.Log) <= n {
		return m.Log
	}
	return m.Log[len(m.Log)-n:]
}
