package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/frontline/internal/config"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/testutil"
)

func defaultGeneratorConfig() config.GeneratorConfig {
	return config.GeneratorConfig{Ranks: 8, Files: 8, Towns: 4, Cities: 2, BorderDepth: 1, Seed: 12345}
}

func countKinds(b *core.Board) map[core.TileKind]int {
	counts := make(map[core.TileKind]int)
	for _, tile := range b.Tiles() {
		counts[tile.Kind]++
	}
	return counts
}

func TestNewGenerator(t *testing.T) {
	cfg := defaultGeneratorConfig()
	rng := testutil.NewTestRNG(12345)
	generator := NewGenerator(cfg, rng)

	require.NotNil(t, generator)
	assert.Equal(t, cfg, generator.config)
	assert.Same(t, rng, generator.rng)
}

func TestGenerateMap(t *testing.T) {
	board := NewSeededGenerator(defaultGeneratorConfig()).GenerateMap()

	assert.Equal(t, uint8(8), board.Ranks())
	assert.Equal(t, uint8(8), board.Files())

	counts := countKinds(board)
	assert.Equal(t, 16, counts[core.TileBorder])
	assert.Equal(t, 2, counts[core.TileCity])
	assert.Equal(t, 4, counts[core.TileTown])
	assert.Equal(t, 64-16-2-4, counts[core.TileEmpty])

	for c, tile := range board.Tiles() {
		switch c.Rank {
		case 0:
			assert.True(t, tile.CanRecruit(core.P1), "rank 0 at %s", c)
		case 7:
			assert.True(t, tile.CanRecruit(core.P2), "rank 7 at %s", c)
		default:
			assert.False(t, tile.IsBorder(), "middle rank at %s", c)
		}
		assert.False(t, tile.IsOccupied())
	}
}

func TestGenerateMapDeterministic(t *testing.T) {
	cfg := defaultGeneratorConfig()
	a := NewSeededGenerator(cfg).GenerateMap()
	b := NewSeededGenerator(cfg).GenerateMap()

	for c, tile := range a.Tiles() {
		other, ok := b.Get(c)
		require.True(t, ok)
		assert.Equal(t, tile.Kind, other.Kind, "tile %s", c)
	}
}

func TestGenerateMapBorderDepth(t *testing.T) {
	cfg := config.GeneratorConfig{Ranks: 4, Files: 3, Towns: 5, Cities: 5, BorderDepth: 2}
	board := NewSeededGenerator(cfg).GenerateMap()

	counts := countKinds(board)
	assert.Equal(t, 12, counts[core.TileBorder], "no middle ranks are left")
	assert.Zero(t, counts[core.TileTown])
	assert.Zero(t, counts[core.TileCity])
}

func TestGenerateMapCrowdedMiddle(t *testing.T) {
	cfg := config.GeneratorConfig{Ranks: 3, Files: 2, Towns: 10, Cities: 10, BorderDepth: 1, Seed: 7}
	board := NewSeededGenerator(cfg).GenerateMap()

	counts := countKinds(board)
	assert.LessOrEqual(t, counts[core.TileTown]+counts[core.TileCity], 2)
	assert.Equal(t, 4, counts[core.TileBorder])
}
