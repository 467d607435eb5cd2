package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// wireCommand is the JSON envelope for every command type. Field names are
// part of the wire contract and must not change.
type wireCommand struct {
	Type              string        `json:"type"`
	From              *Coordinate   `json:"from,omitempty"`
	To                *Coordinate   `json:"to,omitempty"`
	PieceType         *PieceType    `json:"piece_type,omitempty"`
	Coord             *Coordinate   `json:"coord,omitempty"`
	Target            *Coordinate   `json:"target,omitempty"`
	TargetIsDefending bool          `json:"target_is_defending,omitempty"`
	Initiator         *BattleActor  `json:"initiator,omitempty"`
	AttackSupporters  []BattleActor `json:"attack_supporters,omitempty"`
	DefenceSupporters []BattleActor `json:"defence_supporters,omitempty"`
}

// EncodeCommand serializes a command to its JSON envelope
func EncodeCommand(cmd Command) ([]byte, error) {
	w := wireCommand{}
	switch c := cmd.(type) {
	case MoveCommand:
		w.Type = CommandMove.String()
		w.From, w.To = &c.From, &c.To
	case RecruitCommand:
		w.Type = CommandRecruit.String()
		w.PieceType, w.Coord = &c.PieceType, &c.Coord
	case BattleCommand:
		w.Type = CommandBattle.String()
		w.Target = &c.Target
		w.TargetIsDefending = c.TargetIsDefending
		w.Initiator = &c.Initiator
		w.AttackSupporters = c.AttackSupporters
		w.DefenceSupporters = c.DefenceSupporters
	case EndTurnCommand:
		w.Type = CommandEndTurn.String()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	return json.Marshal(w)
}

// DecodeCommand parses a JSON envelope produced by EncodeCommand
func DecodeCommand(data []byte) (Command, error) {
	var w wireCommand
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode command: %w", err)
	}
	return w.command()
}

func (w wireCommand) command() (Command, error) {
	switch w.Type {
	case CommandMove.String():
		if w.From == nil || w.To == nil {
			return nil, errors.New("decode command: move requires from and to")
		}
		return MoveCommand{From: *w.From, To: *w.To}, nil
	case CommandRecruit.String():
		if w.PieceType == nil || w.Coord == nil {
			return nil, errors.New("decode command: recruit requires piece_type and coord")
		}
		return RecruitCommand{PieceType: *w.PieceType, Coord: *w.Coord}, nil
	case CommandBattle.String():
		if w.Target == nil || w.Initiator == nil {
			return nil, errors.New("decode command: battle requires target and initiator")
		}
		return BattleCommand{
			Target:            *w.Target,
			TargetIsDefending: w.TargetIsDefending,
			Initiator:         *w.Initiator,
			AttackSupporters:  w.AttackSupporters,
			DefenceSupporters: w.DefenceSupporters,
		}, nil
	case CommandEndTurn.String():
		return EndTurnCommand{}, nil
	default:
		return nil, fmt.Errorf("decode command: %w: %q", ErrUnknownCommand, w.Type)
	}
}

// DecodeCommands reads a stream of JSON command envelopes (for example one
// per line) until EOF
func DecodeCommands(r io.Reader) ([]Command, error) {
	dec := json.NewDecoder(r)
	var cmds []Command
	for {
		var w wireCommand
		if err := dec.Decode(&w); err != nil {
			if errors.Is(err, io.EOF) {
				return cmds, nil
			}
			return cmds, fmt.Errorf("decode command %d: %w", len(cmds)+1, err)
		}
		cmd, err := w.command()
		if err != nil {
			return cmds, fmt.Errorf("command %d: %w", len(cmds)+1, err)
		}
		cmds = append(cmds, cmd)
	}
}

type wireActor struct {
	Kind  string      `json:"kind"`
	Coord *Coordinate `json:"coord,omitempty"`
	From  *Coordinate `json:"from,omitempty"`
	To    *Coordinate `json:"to,omitempty"`
}

// MarshalJSON encodes a static actor as {"kind":"static","coord":...} and a
// moving actor as {"kind":"moving","from":...,"to":...}
func (a BattleActor) MarshalJSON() ([]byte, error) {
	if a.IsMoving() {
		return json.Marshal(wireActor{Kind: ActorMoving.String(), From: &a.From, To: &a.To})
	}
	return json.Marshal(wireActor{Kind: ActorStatic.String(), Coord: &a.From})
}

// UnmarshalJSON implements json.Unmarshaler
func (a *BattleActor) UnmarshalJSON(data []byte) error {
	var w wireActor
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Kind {
	case ActorStatic.String():
		if w.Coord == nil {
			return errors.New("static actor requires coord")
		}
		*a = StaticActor(*w.Coord)
	case ActorMoving.String():
		if w.From == nil || w.To == nil {
			return errors.New("moving actor requires from and to")
		}
		*a = MovingActor(*w.From, *w.To)
	default:
		return fmt.Errorf("unknown actor kind %q", w.Kind)
	}
	return nil
}
