package core

import (
	"fmt"
	"strings"
)

// PieceType is the kind of unit a piece is
type PieceType uint8

const (
	Artillery PieceType = iota
	Convoy
	Infantry
	Recon
)

// PieceTypes lists every piece type
var PieceTypes = []PieceType{Artillery, Convoy, Infantry, Recon}

// EngagementRange is the half-open distance band [Min, Max) in which a
// piece's power counts toward a battle.
type EngagementRange struct {
	Min, Max int
}

// Contains reports whether distance lies in the band
func (r EngagementRange) Contains(distance int) bool {
	return distance >= r.Min && distance < r.Max
}

// pieceStats is the per-type stat table
type pieceStats struct {
	speed       int
	power       int
	engagement  EngagementRange
	cost        uint8
	canInitiate bool
	canDefend   bool
}

var statTable = map[PieceType]pieceStats{
	Artillery: {speed: 2, power: 2, engagement: EngagementRange{2, 4}, cost: 3},
	Convoy:    {speed: 3, power: 0, engagement: EngagementRange{0, 0}, cost: 3},
	Infantry:  {speed: 2, power: 2, engagement: EngagementRange{1, 2}, cost: 2, canInitiate: true, canDefend: true},
	Recon:     {speed: 3, power: 1, engagement: EngagementRange{1, 2}, cost: 4, canInitiate: true, canDefend: true},
}

func (t PieceType) stats() pieceStats {
	s, ok := statTable[t]
	if !ok {
		panic(fmt.Sprintf("unknown piece type %d", uint8(t)))
	}
	return s
}

// Valid reports whether t is a known piece type
func (t PieceType) Valid() bool {
	_, ok := statTable[t]
	return ok
}

func (t PieceType) Speed() int { return t.stats().speed }
func (t PieceType) Power() int { return t.stats().power }
func (t PieceType) Range() EngagementRange { return t.stats().engagement }
func (t PieceType) Cost() uint8 { return t.stats().cost }
func (t PieceType) CanInitiate() bool { return t.stats().canInitiate }
func (t PieceType) CanDefend() bool { return t.stats().canDefend }

// CanSupport reports whether a piece of this type may contribute power to a
// battle on the given side, staying put or moving into position.
func (t PieceType) CanSupport(attacking, moving bool) bool {
	switch t {
	case Artillery:
		return !moving
	case Convoy:
		return false
	case Infantry:
		return !moving || attacking
	case Recon:
		return true
	default:
		return false
	}
}

func (t PieceType) String() string {
	switch t {
	case Artillery:
		return "artillery"
	case Convoy:
		return "convoy"
	case Infantry:
		return "infantry"
	case Recon:
		return "recon"
	default:
		return fmt.Sprintf("piece_type(%d)", uint8(t))
	}
}

// ParsePieceType converts a lowercase type name to a PieceType
func ParsePieceType(s string) (PieceType, error) {
	for _, t := range PieceTypes {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown piece type %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (t PieceType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown piece type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *PieceType) UnmarshalText(text []byte) error {
	parsed, err := ParsePieceType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Piece is a unit on the board
type Piece struct {
	Type      PieceType `json:"type" yaml:"type"`
	Owner     Player    `json:"owner" yaml:"owner"`
	Exhausted bool      `json:"exhausted" yaml:"exhausted"`
}

// NewPiece creates a freshly recruited piece. New pieces are exhausted and
// cannot act on the turn they are placed.
func NewPiece(t PieceType, owner Player) Piece {
	return Piece{Type: t, Owner: owner, Exhausted: true}
}

func (p Piece) Speed() int { return p.Type.Speed() }
func (p Piece) Power() int { return p.Type.Power() }
func (p Piece) Range() EngagementRange { return p.Type.Range() }
func (p Piece) Cost() uint8 { return p.Type.Cost() }
func (p Piece) CanInitiate() bool { return p.Type.CanInitiate() }
func (p Piece) CanDefend() bool { return p.Type.CanDefend() }

// CanSupport delegates to the piece type
func (p Piece) CanSupport(attacking, moving bool) bool {
	return p.Type.CanSupport(attacking, moving)
}

func (p Piece) String() string {
	state := "ready"
	if p.Exhausted {
		state = "exhausted"
	}
	return fmt.Sprintf("%s %s (%s)", p.Owner, p.Type, state)
}
