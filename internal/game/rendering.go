package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorBlue  = "\033[34m"
	ColorWhite = "\033[37m"
	ColorGray  = "\033[90m"
)

var playerColors = map[core.Player]string{core.P1: ColorRed, core.P2: ColorBlue}

// RenderOptions controls Render output
type RenderOptions struct {
	Color       bool
	Coordinates bool
}

// Render draws the board one row per rank. Each cell is a terrain symbol
// followed by a piece letter: upper case for a ready piece, lower case for
// an exhausted one.
func (g *Game) Render(opts RenderOptions) string {
	const (
		NoTileSymbol = " "
		EmptySymbol  = "."
		TownSymbol   = "t"
		CitySymbol   = "c"
	)

	ranks, files := int(g.board.Ranks()), int(g.board.Files())
	var sb strings.Builder
	sb.Grow((files*12 + 8) * (ranks + 3))

	if opts.Coordinates {
		sb.WriteString("   ")
		for f := 0; f < files; f++ {
			fmt.Fprintf(&sb, "%3d", f)
		}
		sb.WriteString("\n")
	}

	for r := 0; r < ranks; r++ {
		if opts.Coordinates {
			fmt.Fprintf(&sb, "%2d ", r)
		}
		for f := 0; f < files; f++ {
			c := core.NewCoordinate(uint8(r), uint8(f))
			t, ok := g.board.Get(c)
			if !ok {
				sb.WriteString(" " + NoTileSymbol + NoTileSymbol)
				continue
			}

			terrain, terrainColor := EmptySymbol, ColorGray
			switch t.Kind {
			case core.TileTown:
				terrain, terrainColor = TownSymbol, ColorWhite
			case core.TileCity:
				terrain, terrainColor = CitySymbol, ColorWhite
			case core.TileBorder:
				terrain, terrainColor = fmt.Sprint(uint8(t.Controller)), playerColor(t.Controller)
			}

			sb.WriteString(" ")
			writeColored(&sb, opts.Color, terrainColor, terrain)
			if t.Piece == nil {
				sb.WriteString(" ")
				continue
			}
			writeColored(&sb, opts.Color, playerColor(t.Piece.Owner), pieceSymbol(*t.Piece))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nturn %d, %s to move, treasury p1=%d p2=%d\n",
		g.turn, g.current, g.treasury[0], g.treasury[1])
	sb.WriteString(". empty  t town  c city  1/2 border  A/C/I/R pieces (lower case = exhausted)\n")
	return sb.String()
}

func writeColored(sb *strings.Builder, enabled bool, color, s string) {
	if !enabled {
		sb.WriteString(s)
		return
	}
	sb.WriteString(color)
	sb.WriteString(s)
	sb.WriteString(ColorReset)
}

func pieceSymbol(p core.Piece) string {
	symbol := strings.ToUpper(p.Type.String()[:1])
	if p.Exhausted {
		symbol = strings.ToLower(symbol)
	}
	return symbol
}

// playerColor returns the color for the given side
func playerColor(p core.Player) string {
	if c, ok := playerColors[p]; ok {
		return c
	}
	return ColorWhite
}
