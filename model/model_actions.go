package model

import "fmt"

// PlaceLink attempts entanglement generation at p. Invalid targets are
// silent no-ops. Once the preconditions pass, every existing link ages by
// one tick before the creation trial runs, so a failed trial still costs
// the player an action. Returns whether a link was actually created.
func (m *Model) PlaceLink(p Pos) bool {
	if m.GameOver {
		return false
	}
	if !m.Cfg.InBounds(p) || m.Cfg.ClassOf(p) != Placeable {
		return false
	}
	if m.Grid[p.Row][p.Col] {
		return false
	}

	m.ageLinks()
	if m.rng.Float64() >= m.Cfg.CreateProb {
		return false
	}

	m.setLink(p, m.Cfg.Lifetime)
	m.logAction(fmt.Sprintf("Entangle (%d,%d)", p.Row+1, p.Col+1))
	m.checkWin()
	return true
}

// MergeLinks attempts entanglement swapping between the links at a and b.
// Mirror pairs and empty cells are silent no-ops. The aging tick applies
// as soon as the preconditions pass; a failed trial or a pair with no
// composition rule leaves the board otherwise untouched.
func (m *Model) MergeLinks(a, b Pos) {
	if m.GameOver {
		return
	}
	if a.IsMirrorOf(b) {
		return
	}
	if !m.Grid[a.Row][a.Col] || !m.Grid[b.Row][b.Col] {
		return
	}

	m.ageLinks()
	if m.rng.Float64() >= m.Cfg.MergeProb {
		return
	}

	target, ok := composeTarget(a, b)
	if !ok {
		return
	}

	// Sources may have expired on the aging tick above; their missing
	// timer reads as 0 and drags the average down accordingly.
	life := (m.Timers[a] + m.Timers[b]) / 2
	m.RemoveLink(a)
	m.RemoveLink(b)
	if m.Cfg.ClassOf(target) != Forbidden {
		m.setLink(target, life)
	}
	m.logAction(fmt.Sprintf("Swap (%d,%d) and (%d,%d)", a.Row+1, a.Col+1, b.Row+1, b.Col+1))
	m.checkWin()
}

// composeTarget resolves the swap result by matrix-multiplication style
// index composition. First match wins; at most one rule can structurally
// apply for a valid non-mirror pair, and the order breaks any degenerate
// tie the same way every time.
func composeTarget(a, b Pos) (Pos, bool) {
	switch {
	case a.Col == b.Row: // (i,j) (j,k) -> (i,k)
		return Pos{Row: a.Row, Col: b.Col}, true
	case a.Col == b.Col: // (i,j) (k,j) -> (i,k)
		return Pos{Row: a.Row, Col: b.Row}, true
	case a.Row == b.Row: // (i,j) (i,k) -> (j,k)
		return Pos{Row: a.Col, Col: b.Col}, true
	case a.Row == b.Col: // (i,j) (k,i) -> (j,k)
		return Pos{Row: a.Col, Col: b.Row}, true
	}
	return Pos{}, false
}

// setLink is the single write path for occupying a cell. It always mirrors
// the write to the transposed cell, which keeps the symmetry invariant out
// of the callers' hands. Diagonal cells never get here.
func (m *Model) setLink(p Pos, life int) {
	m.Grid[p.Row][p.Col] = true
	m.Timers[p] = life
	if q := p.Mirror(); q != p {
		m.Grid[q.Row][q.Col] = true
		m.Timers[q] = life
	}
}

// RemoveLink clears a link and its mirror. Idempotent.
func (m *Model) RemoveLink(p Pos) {
	m.Grid[p.Row][p.Col] = false
	delete(m.Timers, p)
	if q := p.Mirror(); q != p {
		m.Grid[q.Row][q.Col] = false
		delete(m.Timers, q)
	}
}

// ageLinks advances the action counter and decrements every live timer.
// Decay is action-driven, never frame-driven: this runs exactly once per
// placement or merge attempt that passes its preconditions.
func (m *Model) ageLinks() {
	m.Actions++
	var expired []Pos
	for p := range m.Timers {
		m.Timers[p]--
		if m.Timers[p] <= 0 {
			expired = append(expired, p)
		}
	}
	for _, p := range expired {
		m.RemoveLink(p)
	}
}

// checkWin latches the terminal win state once either target cell holds a
// link. Idempotent; only Reset clears it.
func (m *Model) checkWin() {
	t := m.Cfg.Target
	if m.Grid[t.Row][t.Col] || m.Grid[t.Col][t.Row] {
		m.GameOver = true
		m.Win = true
	}
}

// ActivateCell is the single intent entry point for a clicked cell.
// Placement always gets the first shot on an empty placeable cell and the
// click never falls through to selection, whatever the trial outcome.
// Everything else toggles selection, and a second selection fires the merge.
func (m *Model) ActivateCell(p Pos) {
	if m.GameOver {
		return
	}
	if !m.Cfg.InBounds(p) || m.Cfg.ClassOf(p) == Forbidden {
		return
	}

	if !m.Cfg.MergeEnabled {
		m.PlaceLink(p)
		return
	}

	if m.Cfg.ClassOf(p) == Placeable && !m.Grid[p.Row][p.Col] {
		m.PlaceLink(p)
		return
	}

	m.ToggleSelect(p)
}

// ToggleSelect adds or removes p from the selection. Selecting the mirror
// of the sole selected cell is rejected, since such a pair could never
// merge. Reaching two selections triggers the merge immediately and clears
// the selection regardless of how the merge goes.
func (m *Model) ToggleSelect(p Pos) {
	if !m.Cfg.InBounds(p) || m.Cfg.ClassOf(p) == Forbidden {
		return
	}
	for i, s := range m.Selected {
		if s == p {
			m.Selected = append(m.Selected[:i], m.Selected[i+1:]...)
			return
		}
	}
	if len(m.Selected) == 1 && m.Selected[0].IsMirrorOf(p) {
		return
	}
	m.Selected = append(m.Selected, p)
	if len(m.Selected) == 2 {
		a, b := m.Selected[0], m.Selected[1]
		m.Selected = nil
		m.MergeLinks(a, b)
	}
}

func (m *Model) logAction(entry string) {
	m.Log = append(m.Log, entry)
}
