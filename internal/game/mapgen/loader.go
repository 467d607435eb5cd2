package mapgen

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/frontline/internal/game"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// ErrInvalidMap is returned for map files that cannot describe a board
var ErrInvalidMap = errors.New("invalid map")

// Tile symbols used in map rows
const (
	SymbolEmpty    = '.'
	SymbolTown     = 'T'
	SymbolCity     = 'C'
	SymbolBorderP1 = '1'
	SymbolBorderP2 = '2'
	SymbolNoTile   = '#'
)

// mapFile is the YAML layout of a map
type mapFile struct {
	Name           string        `yaml:"name"`
	Rows           []string      `yaml:"rows"`
	Pieces         []pieceSpec   `yaml:"pieces"`
	Treasury       *treasurySpec `yaml:"treasury"`
	StartingPlayer string        `yaml:"starting_player"`
}

type pieceSpec struct {
	Type      string `yaml:"type"`
	Owner     string `yaml:"owner"`
	Rank      uint8  `yaml:"rank"`
	File      uint8  `yaml:"file"`
	Exhausted bool   `yaml:"exhausted"`
}

type treasurySpec struct {
	P1 uint8 `yaml:"p1"`
	P2 uint8 `yaml:"p2"`
}

// Map is a parsed map: a board plus the optional game settings that came
// with it
type Map struct {
	Name           string
	Board          *core.Board
	Treasury       *[2]uint8
	StartingPlayer core.Player
}

// Options returns the game options the map file set. Settings the file left
// out produce no option.
func (m *Map) Options() []game.Option {
	var opts []game.Option
	if m.Treasury != nil {
		opts = append(opts, game.WithTreasury(m.Treasury[0], m.Treasury[1]))
	}
	if m.StartingPlayer.Valid() {
		opts = append(opts, game.WithStartingPlayer(m.StartingPlayer))
	}
	return opts
}

// LoadMap reads and parses the map file at path
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return m, nil
}

// ParseMap builds a map from YAML. Each row is one rank; rows may differ in
// length and missing cells hold no tile.
func ParseMap(data []byte) (*Map, error) {
	var f mapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}

	board, err := parseRows(f.Rows)
	if err != nil {
		return nil, err
	}

	for i, ps := range f.Pieces {
		c, ok := board.NewCoord(ps.Rank, ps.File)
		if !ok {
			return nil, fmt.Errorf("%w: piece %d: %w", ErrInvalidMap, i, core.ErrOutOfBounds)
		}
		pt, err := core.ParsePieceType(ps.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d: %v", ErrInvalidMap, i, err)
		}
		owner, err := core.ParsePlayer(ps.Owner)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d: %w", ErrInvalidMap, i, err)
		}
		piece := core.Piece{Type: pt, Owner: owner, Exhausted: ps.Exhausted}
		if err := board.PlacePiece(c, piece); err != nil {
			return nil, fmt.Errorf("%w: piece %d: %w", ErrInvalidMap, i, err)
		}
	}

	m := &Map{Name: f.Name, Board: board}
	if f.Treasury != nil {
		m.Treasury = &[2]uint8{f.Treasury.P1, f.Treasury.P2}
	}
	if f.StartingPlayer != "" {
		if m.StartingPlayer, err = core.ParsePlayer(f.StartingPlayer); err != nil {
			return nil, fmt.Errorf("%w: starting_player: %w", ErrInvalidMap, err)
		}
	}
	return m, nil
}

func parseRows(rows []string) (*core.Board, error) {
	if len(rows) == 0 || len(rows) > 255 {
		return nil, fmt.Errorf("%w: need 1 to 255 rows, got %d", ErrInvalidMap, len(rows))
	}
	files := 0
	for _, row := range rows {
		files = max(files, len(row))
	}
	if files == 0 || files > 255 {
		return nil, fmt.Errorf("%w: need 1 to 255 columns, got %d", ErrInvalidMap, files)
	}

	board := core.NewBoard(uint8(len(rows)), uint8(files))
	for rank, row := range rows {
		for file := 0; file < len(row); file++ {
			tile, ok, err := tileFor(row[file])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrInvalidMap, rank, file, err)
			}
			if !ok {
				continue
			}
			if err := board.SetTile(core.NewCoordinate(uint8(rank), uint8(file)), tile); err != nil {
				return nil, err
			}
		}
	}
	return board, nil
}

// tileFor maps a row symbol to a tile. ok is false for cells with no tile.
func tileFor(symbol byte) (tile core.Tile, ok bool, err error) {
	switch symbol {
	case SymbolEmpty:
		return core.NewTile(core.TileEmpty), true, nil
	case SymbolTown:
		return core.NewTile(core.TileTown), true, nil
	case SymbolCity:
		return core.NewTile(core.TileCity), true, nil
	case SymbolBorderP1:
		return core.NewBorderTile(core.P1), true, nil
	case SymbolBorderP2:
		return core.NewBorderTile(core.P2), true, nil
	case SymbolNoTile, ' ':
		return core.Tile{}, false, nil
	default:
		return core.Tile{}, false, fmt.Errorf("unknown symbol %q", symbol)
	}
}
