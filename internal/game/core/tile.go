package core

// TileKind classifies terrain.
// Border tiles additionally carry the side that controls them.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileTown
	TileCity
	TileBorder
)

func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileTown:
		return "town"
	case TileCity:
		return "city"
	case TileBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Tile represents a single playable cell on the map.
// Controller is only meaningful for border tiles. Piece is nil when the tile
// is unoccupied.
type Tile struct {
	Kind       TileKind
	Controller Player
	Piece      *Piece
}

// NewTile creates an unoccupied tile of the given kind
func NewTile(kind TileKind) Tile {
	return Tile{Kind: kind}
}

// NewBorderTile creates an unoccupied border tile controlled by p
func NewBorderTile(p Player) Tile {
	return Tile{Kind: TileBorder, Controller: p}
}

func (t *Tile) IsOccupied() bool { return t.Piece != nil }
func (t *Tile) IsBorder() bool   { return t.Kind == TileBorder }

// IncomeBonus is the treasury income this tile would yield per turn
func (t *Tile) IncomeBonus() uint8 {
	switch t.Kind {
	case TileTown:
		return 1
	case TileCity:
		return 3
	default:
		return 0
	}
}

// DefenceBonus is the extra defence this tile would grant its occupant
func (t *Tile) DefenceBonus() int {
	switch t.Kind {
	case TileTown:
		return 1
	case TileCity:
		return 2
	default:
		return 0
	}
}

// CanRecruit reports whether p may place new pieces on this tile
func (t *Tile) CanRecruit(p Player) bool {
	return t.Kind == TileBorder && t.Controller == p
}

// Clone returns a copy that does not share the piece with t
func (t Tile) Clone() Tile {
	if t.Piece != nil {
		piece := *t.Piece
		t.Piece = &piece
	}
	return t
}
