package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCommand_WireFormat(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{
			name:     "move",
			cmd:      MoveCommand{From: Coordinate{0, 0}, To: Coordinate{0, 1}},
			expected: `{"type":"move","from":{"rank":0,"file":0},"to":{"rank":0,"file":1}}`,
		},
		{
			name:     "recruit",
			cmd:      RecruitCommand{PieceType: Infantry, Coord: Coordinate{2, 2}},
			expected: `{"type":"recruit","piece_type":"infantry","coord":{"rank":2,"file":2}}`,
		},
		{
			name: "battle",
			cmd: BattleCommand{
				Target:            Coordinate{1, 1},
				TargetIsDefending: true,
				Initiator:         StaticActor(Coordinate{0, 1}),
				AttackSupporters:  []BattleActor{MovingActor(Coordinate{3, 1}, Coordinate{2, 1})},
			},
			expected: `{"type":"battle","target":{"rank":1,"file":1},"target_is_defending":true,` +
				`"initiator":{"kind":"static","coord":{"rank":0,"file":1}},` +
				`"attack_supporters":[{"kind":"moving","from":{"rank":3,"file":1},"to":{"rank":2,"file":1}}]}`,
		},
		{
			name:     "end turn",
			cmd:      EndTurnCommand{},
			expected: `{"type":"end_turn"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeCommand(tt.cmd)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))

			decoded, err := DecodeCommand(data)
			require.NoError(t, err)
			assert.Equal(t, tt.cmd, decoded)
		})
	}
}

func TestDecodeCommand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{`},
		{"unknown type", `{"type":"surrender"}`},
		{"move missing to", `{"type":"move","from":{"rank":0,"file":0}}`},
		{"recruit unknown piece", `{"type":"recruit","piece_type":"cavalry","coord":{"rank":0,"file":0}}`},
		{"recruit missing coord", `{"type":"recruit","piece_type":"recon"}`},
		{"battle missing initiator", `{"type":"battle","target":{"rank":0,"file":0}}`},
		{"static actor without coord", `{"type":"battle","target":{"rank":0,"file":0},"initiator":{"kind":"static"}}`},
		{"unknown actor kind", `{"type":"battle","target":{"rank":0,"file":0},"initiator":{"kind":"flying"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCommand([]byte(tt.input))
			assert.Error(t, err)
		})
	}

	_, err := DecodeCommand([]byte(`{"type":"surrender"}`))
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestDecodeCommands(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"recruit","piece_type":"recon","coord":{"rank":0,"file":0}}`,
		`{"type":"end_turn"}`,
		`{"type":"move","from":{"rank":1,"file":1},"to":{"rank":1,"file":2}}`,
	}, "\n")

	cmds, err := DecodeCommands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, CommandRecruit, cmds[0].Kind())
	assert.Equal(t, CommandEndTurn, cmds[1].Kind())
	assert.Equal(t, MoveCommand{From: Coordinate{1, 1}, To: Coordinate{1, 2}}, cmds[2])

	cmds, err = DecodeCommands(strings.NewReader(`{"type":"end_turn"} {"type":"nope"}`))
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Len(t, cmds, 1)
}
