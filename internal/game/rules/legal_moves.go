package rules

import "github.com/mitchelldurbincs/frontline/internal/game/core"

// Game is the read-only surface of a game the calculator needs. It is
// satisfied by *game.Game; the interface keeps this package free of an
// import cycle.
type Game interface {
	Board() *core.Board
	CurrentPlayer() core.Player
	CanDoMove(from, to core.Coordinate) error
	CanDoRecruit(pt core.PieceType, c core.Coordinate) error
	CanDoBattle(cmd core.BattleCommand) error
	CanSupportBattle(actor core.BattleActor, target core.Coordinate, attacking bool) error
}

// LegalMoveCalculator enumerates legal commands for the side to move, for
// example to highlight tiles in a UI. Every answer comes from the game's own
// predicates, so it never disagrees with DoCommand.
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// LegalDestinations returns every tile the piece at from may move to, in
// row-major order
func (lmc *LegalMoveCalculator) LegalDestinations(g Game, from core.Coordinate) []core.Coordinate {
	board := g.Board()
	piece, ok := board.PieceAt(from)
	if !ok {
		return nil
	}

	var dests []core.Coordinate
	for _, to := range withinDistance(board, from, piece.Speed()) {
		if g.CanDoMove(from, to) == nil {
			dests = append(dests, to)
		}
	}
	return dests
}

// RecruitSites returns every tile where a piece of type pt may be recruited
func (lmc *LegalMoveCalculator) RecruitSites(g Game, pt core.PieceType) []core.Coordinate {
	var sites []core.Coordinate
	for c := range g.Board().Tiles() {
		if g.CanDoRecruit(pt, c) == nil {
			sites = append(sites, c)
		}
	}
	return sites
}

// AttackActors returns every actor the side to move could commit against
// target: each ready piece staying put, and each legal move into range
func (lmc *LegalMoveCalculator) AttackActors(g Game, target core.Coordinate) []core.BattleActor {
	return lmc.actors(g, target, true)
}

// DefenceActors returns every actor the opponent could commit to defend
// target
func (lmc *LegalMoveCalculator) DefenceActors(g Game, target core.Coordinate) []core.BattleActor {
	return lmc.actors(g, target, false)
}

func (lmc *LegalMoveCalculator) actors(g Game, target core.Coordinate, attacking bool) []core.BattleActor {
	board := g.Board()
	side := g.CurrentPlayer()
	if !attacking {
		side = side.Opponent()
	}

	var actors []core.BattleActor
	for from := range board.PieceCoords() {
		piece, _ := board.PieceAt(from)
		if piece.Owner != side || from == target {
			continue
		}

		static := core.StaticActor(from)
		if g.CanSupportBattle(static, target, attacking) == nil {
			actors = append(actors, static)
		}
		for _, to := range withinDistance(board, from, piece.Speed()) {
			moving := core.MovingActor(from, to)
			if g.CanSupportBattle(moving, target, attacking) == nil {
				actors = append(actors, moving)
			}
		}
	}
	return actors
}

// Initiators returns the attack actors that can open a battle on target on
// their own
func (lmc *LegalMoveCalculator) Initiators(g Game, target core.Coordinate) []core.BattleActor {
	var initiators []core.BattleActor
	for _, actor := range lmc.AttackActors(g, target) {
		if g.CanDoBattle(core.BattleCommand{Target: target, Initiator: actor}) == nil {
			initiators = append(initiators, actor)
		}
	}
	return initiators
}

// Targets returns every enemy piece that at least one initiator can attack
func (lmc *LegalMoveCalculator) Targets(g Game) []core.Coordinate {
	board := g.Board()
	enemy := g.CurrentPlayer().Opponent()

	var targets []core.Coordinate
	for c := range board.PieceCoords() {
		piece, _ := board.PieceAt(c)
		if piece.Owner != enemy {
			continue
		}
		if len(lmc.Initiators(g, c)) > 0 {
			targets = append(targets, c)
		}
	}
	return targets
}

// withinDistance lists the tiles other than from whose Manhattan distance
// from it is at most d, in row-major order
func withinDistance(board *core.Board, from core.Coordinate, d int) []core.Coordinate {
	var coords []core.Coordinate
	for dr := -d; dr <= d; dr++ {
		span := d - abs(dr)
		for df := -span; df <= span; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			c, ok := from.Offset(dr, df)
			if ok && board.HasTile(c) {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
