package mapgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/frontline/internal/game"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

const crossing = `
name: crossing
starting_player: p2
treasury:
  p1: 4
  p2: 6
rows:
  - "111"
  - ".T#"
  - "C."
  - "222"
pieces:
  - type: infantry
    owner: p1
    rank: 0
    file: 1
  - type: recon
    owner: p2
    rank: 3
    file: 0
    exhausted: true
`

func TestParseMap(t *testing.T) {
	m, err := ParseMap([]byte(crossing))
	require.NoError(t, err)

	assert.Equal(t, "crossing", m.Name)
	assert.Equal(t, uint8(4), m.Board.Ranks())
	assert.Equal(t, uint8(3), m.Board.Files())
	assert.Equal(t, core.P2, m.StartingPlayer)
	require.NotNil(t, m.Treasury)
	assert.Equal(t, [2]uint8{4, 6}, *m.Treasury)

	tile, ok := m.Board.Get(core.NewCoordinate(1, 1))
	require.True(t, ok)
	assert.Equal(t, core.TileTown, tile.Kind)
	tile, _ = m.Board.Get(core.NewCoordinate(2, 0))
	assert.Equal(t, core.TileCity, tile.Kind)
	tile, _ = m.Board.Get(core.NewCoordinate(3, 2))
	assert.True(t, tile.CanRecruit(core.P2))

	assert.False(t, m.Board.HasTile(core.NewCoordinate(1, 2)), "# holds no tile")
	assert.False(t, m.Board.HasTile(core.NewCoordinate(2, 2)), "short row")

	infantry, ok := m.Board.PieceAt(core.NewCoordinate(0, 1))
	require.True(t, ok)
	assert.Equal(t, core.Piece{Type: core.Infantry, Owner: core.P1}, infantry)
	recon, ok := m.Board.PieceAt(core.NewCoordinate(3, 0))
	require.True(t, ok)
	assert.True(t, recon.Exhausted)
}

func TestMapOptions(t *testing.T) {
	m, err := ParseMap([]byte(crossing))
	require.NoError(t, err)

	g := game.NewGame(m.Board, m.Options()...)
	assert.Equal(t, core.P2, g.CurrentPlayer())
	assert.Equal(t, uint8(4), g.Treasury(core.P1))
	assert.Equal(t, uint8(6), g.Treasury(core.P2))

	bare, err := ParseMap([]byte("rows: [\"..\"]"))
	require.NoError(t, err)
	assert.Empty(t, bare.Options())
	assert.Nil(t, bare.Treasury)
}

func TestParseMapErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{name: "not yaml", yaml: "rows: [", wantErr: ErrInvalidMap},
		{name: "no rows", yaml: "name: empty", wantErr: ErrInvalidMap},
		{name: "blank rows", yaml: "rows: [\"\"]", wantErr: ErrInvalidMap},
		{name: "unknown symbol", yaml: "rows: [\".x\"]", wantErr: ErrInvalidMap},
		{
			name:    "piece off board",
			yaml:    "rows: [\"..\"]\npieces: [{type: infantry, owner: p1, rank: 3, file: 0}]",
			wantErr: core.ErrOutOfBounds,
		},
		{
			name:    "piece on missing tile",
			yaml:    "rows: [\".#\"]\npieces: [{type: infantry, owner: p1, rank: 0, file: 1}]",
			wantErr: core.ErrNoTileAt,
		},
		{
			name:    "stacked pieces",
			yaml:    "rows: [\"..\"]\npieces: [{type: infantry, owner: p1, rank: 0, file: 0}, {type: recon, owner: p2, rank: 0, file: 0}]",
			wantErr: core.ErrTileOccupied,
		},
		{
			name:    "unknown owner",
			yaml:    "rows: [\"..\"]\npieces: [{type: infantry, owner: p3, rank: 0, file: 0}]",
			wantErr: core.ErrInvalidPlayer,
		},
		{
			name:    "unknown piece type",
			yaml:    "rows: [\"..\"]\npieces: [{type: tank, owner: p1, rank: 0, file: 0}]",
			wantErr: ErrInvalidMap,
		},
		{name: "bad starting player", yaml: "rows: [\"..\"]\nstarting_player: red", wantErr: core.ErrInvalidPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMap([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidMap)
		})
	}
}

func TestLoadMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(crossing), 0o644))

	m, err := LoadMap(path)
	require.NoError(t, err)
	assert.Equal(t, "crossing", m.Name)

	_, err = LoadMap(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
