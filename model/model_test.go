package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, size, lifetime int, createProb, mergeProb float64) *Model {
	t.Helper()
	cfg, err := NewConfig(size, lifetime, createProb, mergeProb, true)
	require.NoError(t, err)
	return New(cfg)
}

func TestNewConfigRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name                  string
		size, lifetime        int
		createProb, mergeProb float64
	}{
		{"size too small", 1, 5, 0.8, 0.8},
		{"zero lifetime", 5, 0, 0.8, 0.8},
		{"negative lifetime", 5, -3, 0.8, 0.8},
		{"create prob negative", 5, 5, -0.1, 0.8},
		{"create prob above one", 5, 5, 1.1, 0.8},
		{"merge prob negative", 5, 5, 0.8, -0.1},
		{"merge prob above one", 5, 5, 0.8, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.size, tc.lifetime, tc.createProb, tc.mergeProb, true)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestNewConfigAcceptsBoundaryProbabilities(t *testing.T) {
	for _, p := range []float64{0, 1} {
		cfg, err := NewConfig(2, 1, p, p, false)
		require.NoError(t, err)
		assert.Equal(t, Pos{Row: 0, Col: 1}, cfg.Target)
	}
}

func TestCellClassPartition(t *testing.T) {
	cfg, err := NewConfig(5, 5, 0.8, 0.8, true)
	require.NoError(t, err)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			p := Pos{Row: r, Col: c}
			switch {
			case r == c:
				assert.Equal(t, Forbidden, cfg.ClassOf(p), "diagonal %v", p)
			case c == r+1 || c == r-1:
				assert.Equal(t, Placeable, cfg.ClassOf(p), "off-diagonal %v", p)
			default:
				assert.Equal(t, Plain, cfg.ClassOf(p), "plain %v", p)
			}
		}
	}

	assert.Len(t, cfg.CellsOf(Forbidden), 5)
	assert.Len(t, cfg.CellsOf(Placeable), 8)
	assert.Len(t, cfg.CellsOf(Plain), 12)
	assert.Equal(t, Pos{Row: 0, Col: 4}, cfg.Target)
}

func TestResetRestoresPristineState(t *testing.T) {
	m := newTestModel(t, 5, 30, 1, 1)

	// Build up a non-trivial state first.
	require.True(t, m.PlaceLink(Pos{Row: 0, Col: 1}))
	require.True(t, m.PlaceLink(Pos{Row: 1, Col: 2}))
	m.ToggleSelect(Pos{Row: 0, Col: 1})
	require.Len(t, m.Selected, 1)
	require.NotEmpty(t, m.Log)
	require.NotZero(t, m.Actions)

	m.Reset()

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			assert.False(t, m.Grid[r][c])
		}
	}
	assert.Empty(t, m.Timers)
	assert.Empty(t, m.Selected)
	assert.Empty(t, m.Log)
	assert.Zero(t, m.Actions)
	assert.False(t, m.GameOver)
	assert.False(t, m.Win)
}

func TestTailLog(t *testing.T) {
	m := newTestModel(t, 5, 30, 1, 1)
	m.PlaceLink(Pos{Row: 0, Col: 1})
	m.PlaceLink(Pos{Row: 1, Col: 2})
	m.PlaceLink(Pos{Row: 2, Col: 3})

	assert.Equal(t, m.Log, m.TailLog(10))
	assert.Equal(t, m.Log[1:], m.TailLog(2))
}
