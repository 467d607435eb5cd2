package core

import "fmt"

// CommandKind identifies the type of a command
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandRecruit
	CommandBattle
	CommandEndTurn
)

func (k CommandKind) String() string {
	switch k {
	case CommandMove:
		return "move"
	case CommandRecruit:
		return "recruit"
	case CommandBattle:
		return "battle"
	case CommandEndTurn:
		return "end_turn"
	default:
		return fmt.Sprintf("command(%d)", int(k))
	}
}

// Command is one action a side takes during its turn.
// The concrete types are MoveCommand, RecruitCommand, BattleCommand and
// EndTurnCommand.
type Command interface {
	Kind() CommandKind
	String() string
}

// MoveCommand relocates a piece
type MoveCommand struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

func (MoveCommand) Kind() CommandKind { return CommandMove }

func (m MoveCommand) String() string {
	return fmt.Sprintf("move from %s to %s", m.From, m.To)
}

// RecruitCommand buys a new piece onto a controlled border tile
type RecruitCommand struct {
	PieceType PieceType  `json:"piece_type"`
	Coord     Coordinate `json:"coord"`
}

func (RecruitCommand) Kind() CommandKind { return CommandRecruit }

func (r RecruitCommand) String() string {
	return fmt.Sprintf("recruit %s at %s", r.PieceType, r.Coord)
}

// BattleCommand attacks the enemy piece at Target
type BattleCommand struct {
	Target            Coordinate    `json:"target"`
	TargetIsDefending bool          `json:"target_is_defending"`
	Initiator         BattleActor   `json:"initiator"`
	AttackSupporters  []BattleActor `json:"attack_supporters"`
	DefenceSupporters []BattleActor `json:"defence_supporters"`
}

func (BattleCommand) Kind() CommandKind { return CommandBattle }

func (b BattleCommand) String() string {
	return fmt.Sprintf("battle on %s initiated by %s with %d attack and %d defence supporters",
		b.Target, b.Initiator, len(b.AttackSupporters), len(b.DefenceSupporters))
}

// Attackers returns the initiator followed by the attack supporters
func (b BattleCommand) Attackers() []BattleActor {
	attackers := make([]BattleActor, 0, len(b.AttackSupporters)+1)
	attackers = append(attackers, b.Initiator)
	return append(attackers, b.AttackSupporters...)
}

// EndTurnCommand passes play to the opponent
type EndTurnCommand struct{}

func (EndTurnCommand) Kind() CommandKind { return CommandEndTurn }
func (EndTurnCommand) String() string    { return "end turn" }

// ActorKind tells whether a battle actor stays put or moves into position
type ActorKind uint8

const (
	ActorStatic ActorKind = iota
	ActorMoving
)

func (k ActorKind) String() string {
	if k == ActorMoving {
		return "moving"
	}
	return "static"
}

// BattleActor is a piece contributing power to one side of a battle.
// A static actor has From == To.
type BattleActor struct {
	Kind ActorKind
	From Coordinate
	To   Coordinate
}

// StaticActor contributes the piece at c without moving it
func StaticActor(c Coordinate) BattleActor {
	return BattleActor{Kind: ActorStatic, From: c, To: c}
}

// MovingActor moves the piece at from to to as part of contributing
func MovingActor(from, to Coordinate) BattleActor {
	return BattleActor{Kind: ActorMoving, From: from, To: to}
}

func (a BattleActor) IsMoving() bool { return a.Kind == ActorMoving }

// Origin is where the actor's piece stands before the battle
func (a BattleActor) Origin() Coordinate { return a.From }

// Position is where the actor's piece stands once it has contributed
func (a BattleActor) Position() Coordinate {
	if a.IsMoving() {
		return a.To
	}
	return a.From
}

func (a BattleActor) String() string {
	if a.IsMoving() {
		return fmt.Sprintf("moving %s->%s", a.From, a.To)
	}
	return fmt.Sprintf("static %s", a.From)
}
