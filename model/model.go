package model

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidConfig is returned by NewConfig for out-of-range parameters.
// Anything that passes construction can never fail at runtime; invalid
// player input is absorbed as a no-op instead.
var ErrInvalidConfig = errors.New("invalid config")

type Pos struct {
	Row, Col int
}

// Mirror is the transposed cell (c,r). A link always occupies a cell and
// its mirror together.
func (p Pos) Mirror() Pos {
	return Pos{Row: p.Col, Col: p.Row}
}

func (p Pos) IsMirrorOf(q Pos) bool {
	return p.Row == q.Col && p.Col == q.Row
}

type CellClass int

const (
	// Plain cells cannot originate a link but can hold a merged one.
	Plain CellClass = iota
	// Forbidden cells are the main diagonal. Never occupied, never selected.
	Forbidden
	// Placeable cells are the super/sub-diagonal, the only cells where a
	// new link may be generated.
	Placeable
)

// Config holds everything fixed at construction: board size, link lifetime,
// trial probabilities and the precomputed cell-class partition. It is never
// mutated after NewConfig.
type Config struct {
	Size         int
	Lifetime     int
	CreateProb   float64
	MergeProb    float64
	MergeEnabled bool
	Target       Pos

	classes [][]CellClass
}

func NewConfig(size, lifetime int, createProb, mergeProb float64, mergeEnabled bool) (*Config, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: grid size %d, need at least 2", ErrInvalidConfig, size)
	}
	if lifetime < 1 {
		return nil, fmt.Errorf("%w: link lifetime %d, need at least 1", ErrInvalidConfig, lifetime)
	}
	if createProb < 0 || createProb > 1 {
		return nil, fmt.Errorf("%w: creation probability %v not in [0,1]", ErrInvalidConfig, createProb)
	}
	if mergeProb < 0 || mergeProb > 1 {
		return nil, fmt.Errorf("%w: merge probability %v not in [0,1]", ErrInvalidConfig, mergeProb)
	}

	c := &Config{
		Size:         size,
		Lifetime:     lifetime,
		CreateProb:   createProb,
		MergeProb:    mergeProb,
		MergeEnabled: mergeEnabled,
		Target:       Pos{Row: 0, Col: size - 1},
	}

	c.classes = make([][]CellClass, size)
	for r := 0; r < size; r++ {
		c.classes[r] = make([]CellClass, size)
	}
	for i := 0; i < size; i++ {
		c.classes[i][i] = Forbidden
		if i+1 < size {
			c.classes[i][i+1] = Placeable
		}
		if i-1 >= 0 {
			c.classes[i][i-1] = Placeable
		}
	}
	return c, nil
}

func (c *Config) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < c.Size && p.Col >= 0 && p.Col < c.Size
}

func (c *Config) ClassOf(p Pos) CellClass {
	return c.classes[p.Row][p.Col]
}

// CellsOf lists all cells of one class in row-major order, for renderers.
func (c *Config) CellsOf(class CellClass) []Pos {
	var cells []Pos
	for r := 0; r < c.Size; r++ {
		for col := 0; col < c.Size; col++ {
			if c.classes[r][col] == class {
				cells = append(cells, Pos{Row: r, Col: col})
			}
		}
	}
	return cells
}

// Model is the mutable game state. It is single-writer: callers drive one
// operation at a time, and Reset must not race an in-flight operation.
type Model struct {
	Cfg *Config

	Grid     [][]bool
	Timers   map[Pos]int
	Selected []Pos
	Log      []string
	Actions  int
	GameOver bool
	Win      bool

	rng *rand.Rand
}

func New(cfg *Config) *Model {
	m := &Model{
		Cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.Reset()
	return m
}

// Reset reinitializes every piece of game state. Nothing survives a reset
// except the configuration and the random source.
func (m *Model) Reset() {
	m.Grid = make([][]bool, m.Cfg.Size)
	for r := range m.Grid {
		m.Grid[r] = make([]bool, m.Cfg.Size)
	}
	m.Timers = make(map[Pos]int)
	m.Selected = nil
	m.Log = nil
	m.Actions = 0
	m.GameOver = false
	m.Win = false
}
