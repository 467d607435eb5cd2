package core

import (
	"fmt"
	"strings"
)

// Player identifies one of the two sides. The zero value is not a valid side.
type Player uint8

const (
	NoPlayer Player = iota
	P1
	P2
)

// Players lists both sides in turn order
var Players = [2]Player{P1, P2}

// Opponent returns the other side
func (p Player) Opponent() Player {
	switch p {
	case P1:
		return P2
	case P2:
		return P1
	default:
		return NoPlayer
	}
}

// Valid reports whether p is P1 or P2
func (p Player) Valid() bool {
	return p == P1 || p == P2
}

func (p Player) String() string {
	switch p {
	case P1:
		return "p1"
	case P2:
		return "p2"
	default:
		return fmt.Sprintf("player(%d)", uint8(p))
	}
}

// ParsePlayer converts "p1"/"p2" (case-insensitive) or "1"/"2" to a Player
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p1", "1":
		return P1, nil
	case "p2", "2":
		return P2, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (p Player) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
