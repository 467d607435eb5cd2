package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// battleBoard is the shared layout for battle tests. P2 infantry stands at
// (2,2) with P1 forces around it.
func battleBoard() map[core.Coordinate]core.Piece {
	return map[core.Coordinate]core.Piece{
		c(2, 2): ready(core.Infantry, core.P2),
		c(1, 2): ready(core.Infantry, core.P1),  // adjacent to target
		c(0, 0): ready(core.Infantry, core.P1),  // two steps from (1,1)
		c(3, 0): ready(core.Recon, core.P1),     // can move next to target
		c(0, 2): ready(core.Artillery, core.P1), // distance 2 from target
		c(2, 3): ready(core.Recon, core.P2),     // adjacent defender
		c(3, 3): ready(core.Infantry, core.P2),  // diagonal defender
		c(0, 3): ready(core.Artillery, core.P2),
		c(2, 0): core.NewPiece(core.Infantry, core.P1),
	}
}

func TestBattleValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     core.BattleCommand
		wantErr error
	}{
		{
			name: "static initiator",
			cmd:  core.BattleCommand{Target: c(2, 2), Initiator: core.StaticActor(c(1, 2))},
		},
		{
			name:    "target off board",
			cmd:     core.BattleCommand{Target: c(7, 7), Initiator: core.StaticActor(c(1, 2))},
			wantErr: core.ErrNoTileAt,
		},
		{
			name:    "target empty",
			cmd:     core.BattleCommand{Target: c(1, 1), Initiator: core.StaticActor(c(1, 2))},
			wantErr: core.ErrTileEmpty,
		},
		{
			name:    "target is own piece",
			cmd:     core.BattleCommand{Target: c(0, 0), Initiator: core.StaticActor(c(1, 2))},
			wantErr: core.ErrTargetNotEnemy,
		},
		{
			name:    "artillery cannot defend",
			cmd:     core.BattleCommand{Target: c(0, 3), TargetIsDefending: true, Initiator: core.StaticActor(c(1, 2))},
			wantErr: core.ErrTargetCannotDefend,
		},
		{
			name:    "artillery cannot initiate",
			cmd:     core.BattleCommand{Target: c(2, 2), Initiator: core.StaticActor(c(0, 2))},
			wantErr: core.ErrCannotInitiate,
		},
		{
			name:    "initiator out of range",
			cmd:     core.BattleCommand{Target: c(2, 2), Initiator: core.StaticActor(c(0, 0))},
			wantErr: core.ErrActorOutOfRange,
		},
		{
			name:    "exhausted initiator",
			cmd:     core.BattleCommand{Target: c(2, 2), Initiator: core.StaticActor(c(2, 0))},
			wantErr: core.ErrPieceExhausted,
		},
		{
			name:    "enemy piece as attacker",
			cmd:     core.BattleCommand{Target: c(2, 2), Initiator: core.StaticActor(c(2, 3))},
			wantErr: core.ErrNotOwner,
		},
		{
			name:    "moving initiator lands out of range",
			cmd:     core.BattleCommand{Target: c(2, 2), Initiator: core.MovingActor(c(0, 0), c(1, 1))},
			wantErr: core.ErrActorOutOfRange,
		},
		{
			name: "moving recon initiator",
			cmd:  core.BattleCommand{Target: c(2, 2), Initiator: core.MovingActor(c(3, 0), c(2, 1))},
		},
		{
			name:    "moving initiator too far",
			cmd:     core.BattleCommand{Target: c(2, 2), Initiator: core.MovingActor(c(0, 0), c(2, 1))},
			wantErr: core.ErrOutOfSpeedRange,
		},
		{
			name:    "moving initiator onto occupied tile",
			cmd:     core.BattleCommand{Target: c(2, 2), Initiator: core.MovingActor(c(3, 0), c(2, 0))},
			wantErr: core.ErrTileOccupied,
		},
		{
			name: "static artillery supports",
			cmd: core.BattleCommand{
				Target:           c(2, 2),
				Initiator:        core.StaticActor(c(1, 2)),
				AttackSupporters: []core.BattleActor{core.StaticActor(c(0, 2))},
			},
		},
		{
			name: "moving artillery cannot support",
			cmd: core.BattleCommand{
				Target:           c(2, 2),
				Initiator:        core.StaticActor(c(1, 2)),
				AttackSupporters: []core.BattleActor{core.MovingActor(c(0, 2), c(0, 1))},
			},
			wantErr: core.ErrActorCannotSupport,
		},
		{
			name: "moving infantry cannot defend",
			cmd: core.BattleCommand{
				Target:            c(2, 2),
				Initiator:         core.StaticActor(c(1, 2)),
				DefenceSupporters: []core.BattleActor{core.MovingActor(c(3, 3), c(3, 2))},
			},
			wantErr: core.ErrActorCannotSupport,
		},
		{
			name: "defence supporter owned by attacker",
			cmd: core.BattleCommand{
				Target:            c(2, 2),
				Initiator:         core.StaticActor(c(1, 2)),
				DefenceSupporters: []core.BattleActor{core.StaticActor(c(0, 0))},
			},
			wantErr: core.ErrNotOwner,
		},
		{
			name: "diagonal defender out of range",
			cmd: core.BattleCommand{
				Target:            c(2, 2),
				Initiator:         core.StaticActor(c(1, 2)),
				DefenceSupporters: []core.BattleActor{core.StaticActor(c(3, 3))},
			},
			wantErr: core.ErrActorOutOfRange,
		},
		{
			name: "same piece twice",
			cmd: core.BattleCommand{
				Target:           c(2, 2),
				Initiator:        core.StaticActor(c(1, 2)),
				AttackSupporters: []core.BattleActor{core.StaticActor(c(1, 2))},
			},
			wantErr: core.ErrDuplicateActor,
		},
		{
			name: "two movers share a destination",
			cmd: core.BattleCommand{
				Target:    c(2, 2),
				Initiator: core.MovingActor(c(3, 0), c(2, 1)),
				DefenceSupporters: []core.BattleActor{
					core.MovingActor(c(2, 3), c(2, 1)),
				},
			},
			wantErr: core.ErrDuplicateActor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, battleBoard())
			before := g.Board()

			err := g.CanDoBattle(tt.cmd)
			if tt.wantErr == nil {
				require.NoError(t, err)
				_, err = g.Battle(tt.cmd)
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = g.Battle(tt.cmd)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, g.Board(), "rejected battle must not change the board")
		})
	}
}

func TestBattleActorsResolveRegardlessOfOutcome(t *testing.T) {
	g := newTestGame(t, battleBoard())

	result, err := g.Battle(core.BattleCommand{
		Target:            c(2, 2),
		TargetIsDefending: true,
		Initiator:         core.MovingActor(c(3, 0), c(2, 1)),
		AttackSupporters:  []core.BattleActor{core.StaticActor(c(0, 2))},
		DefenceSupporters: []core.BattleActor{core.StaticActor(c(2, 3))},
	})
	require.NoError(t, err)

	// recon 1 + artillery 2 against infantry 2 + recon 1
	assert.Equal(t, 3, result.AttackPower)
	assert.Equal(t, 3, result.DefencePower)
	assert.False(t, result.TargetRemoved)
	assert.Equal(t, 3, result.Actors)

	_, ok := g.PieceAt(c(3, 0))
	assert.False(t, ok, "moving actor left its origin")
	for _, coord := range []core.Coordinate{c(2, 1), c(0, 2), c(2, 3)} {
		piece, ok := g.PieceAt(coord)
		require.True(t, ok, "actor at %s", coord)
		assert.True(t, piece.Exhausted, "actor at %s", coord)
	}

	target, ok := g.PieceAt(c(2, 2))
	require.True(t, ok)
	assert.False(t, target.Exhausted, "the target is not an actor")
}

func TestBattleMovingDefenceSupporter(t *testing.T) {
	g := newTestGame(t, battleBoard())

	result, err := g.Battle(core.BattleCommand{
		Target:            c(2, 2),
		Initiator:         core.StaticActor(c(1, 2)),
		DefenceSupporters: []core.BattleActor{core.MovingActor(c(2, 3), c(3, 2))},
	})
	require.NoError(t, err)

	// the target does not defend, so only the recon counts
	assert.Equal(t, 2, result.AttackPower)
	assert.Equal(t, 1, result.DefencePower)
	assert.True(t, result.TargetRemoved)

	moved, ok := g.PieceAt(c(3, 2))
	require.True(t, ok)
	assert.Equal(t, core.P2, moved.Owner)
	assert.True(t, moved.Exhausted)
	_, ok = g.PieceAt(c(2, 3))
	assert.False(t, ok)
}

func TestBattleUndefendedTargetFallsToAnyAttack(t *testing.T) {
	g := newTestGame(t, battleBoard())

	result, err := g.Battle(core.BattleCommand{Target: c(2, 2), Initiator: core.MovingActor(c(3, 0), c(3, 2))})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AttackPower)
	assert.Equal(t, 0, result.DefencePower)
	assert.True(t, result.TargetRemoved)
}
