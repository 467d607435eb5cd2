package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapCommandError(t *testing.T) {
	tests := []struct {
		name     string
		player   Player
		cmd      Command
		err      error
		expected string
		isNil    bool
	}{
		{
			name:  "nil error returns nil",
			cmd:   MoveCommand{},
			isNil: true,
		},
		{
			name:     "move with coordinates",
			player:   P1,
			cmd:      MoveCommand{From: Coordinate{5, 3}, To: Coordinate{5, 4}},
			err:      ErrPieceExhausted,
			expected: "p1: move from (5,3) to (5,4): piece is exhausted",
		},
		{
			name:     "recruit",
			player:   P2,
			cmd:      RecruitCommand{PieceType: Recon, Coord: Coordinate{0, 0}},
			err:      ErrInsufficientFunds,
			expected: "p2: recruit recon at (0,0): insufficient funds",
		},
		{
			name:     "missing command",
			player:   P1,
			err:      ErrUnknownCommand,
			expected: "p1: command: unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapCommandError(tt.player, tt.cmd, tt.err)
			if tt.isNil {
				assert.Nil(t, wrapped)
				return
			}
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, tt.err))

			var cmdErr *CommandError
			require.True(t, errors.As(wrapped, &cmdErr))
			assert.Equal(t, tt.player, cmdErr.Player)
		})
	}
}

func TestWrapGameStateError(t *testing.T) {
	assert.Nil(t, WrapGameStateError(3, "end turn", nil))

	inner := fmt.Errorf("policy failed: %w", ErrInvalidPlayer)
	wrapped := WrapGameStateError(3, "turn start", inner)
	require.NotNil(t, wrapped)
	assert.Equal(t, "turn 3: turn start: policy failed: invalid player", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrInvalidPlayer)
}
