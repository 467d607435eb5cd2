package mapgen

import (
	"math/rand"

	"github.com/mitchelldurbincs/frontline/internal/config"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// Generator builds random boards with deterministic RNG
type Generator struct {
	config config.GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(cfg config.GeneratorConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: cfg,
		rng:    rng,
	}
}

// NewSeededGenerator creates a generator whose RNG is seeded from cfg.Seed
func NewSeededGenerator(cfg config.GeneratorConfig) *Generator {
	return NewGenerator(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// GenerateMap creates a board with every address filled. P1 controls the
// first BorderDepth ranks and P2 the last; towns and cities are scattered
// over the ranks between them.
func (g *Generator) GenerateMap() *core.Board {
	board := core.NewFilledBoard(uint8(g.config.Ranks), uint8(g.config.Files))

	g.placeBorders(board)
	g.placeSites(board, core.TileCity, g.config.Cities)
	g.placeSites(board, core.TileTown, g.config.Towns)

	return board
}

func (g *Generator) placeBorders(b *core.Board) {
	depth := g.config.BorderDepth
	ranks := int(b.Ranks())
	for file := 0; file < int(b.Files()); file++ {
		for rank := 0; rank < depth; rank++ {
			front := core.NewCoordinate(uint8(rank), uint8(file))
			back := core.NewCoordinate(uint8(ranks-1-rank), uint8(file))
			*b.MustTile(front) = core.NewBorderTile(core.P1)
			*b.MustTile(back) = core.NewBorderTile(core.P2)
		}
	}
}

// placeSites turns up to want empty middle tiles into kind. Placement stops
// early when the middle of the board is full.
func (g *Generator) placeSites(b *core.Board, kind core.TileKind, want int) {
	depth := g.config.BorderDepth
	middle := int(b.Ranks()) - 2*depth
	if middle <= 0 || want <= 0 {
		return
	}

	placed := 0
	// Use a maximum attempt counter to avoid infinite loops
	maxAttempts := want * 10
	for attempts := 0; placed < want && attempts < maxAttempts; attempts++ {
		rank := depth + g.rng.Intn(middle)
		file := g.rng.Intn(int(b.Files()))
		t := b.MustTile(core.NewCoordinate(uint8(rank), uint8(file)))

		if t.Kind == core.TileEmpty {
			t.Kind = kind
			placed++
		}
	}
}
