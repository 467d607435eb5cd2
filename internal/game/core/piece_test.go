package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceType_Stats(t *testing.T) {
	tests := []struct {
		pieceType   PieceType
		speed       int
		power       int
		engagement  EngagementRange
		cost        uint8
		canInitiate bool
		canDefend   bool
	}{
		{Artillery, 2, 2, EngagementRange{2, 4}, 3, false, false},
		{Convoy, 3, 0, EngagementRange{0, 0}, 3, false, false},
		{Infantry, 2, 2, EngagementRange{1, 2}, 2, true, true},
		{Recon, 3, 1, EngagementRange{1, 2}, 4, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.pieceType.String(), func(t *testing.T) {
			p := NewPiece(tt.pieceType, P1)
			assert.Equal(t, tt.speed, p.Speed())
			assert.Equal(t, tt.power, p.Power())
			assert.Equal(t, tt.engagement, p.Range())
			assert.Equal(t, tt.cost, p.Cost())
			assert.Equal(t, tt.canInitiate, p.CanInitiate())
			assert.Equal(t, tt.canDefend, p.CanDefend())
		})
	}
}

func TestNewPieceStartsExhausted(t *testing.T) {
	p := NewPiece(Infantry, P2)
	assert.True(t, p.Exhausted)
	assert.Equal(t, P2, p.Owner)
	assert.Equal(t, Infantry, p.Type)
}

func TestEngagementRange_Contains(t *testing.T) {
	artillery := Artillery.Range()
	assert.False(t, artillery.Contains(1))
	assert.True(t, artillery.Contains(2))
	assert.True(t, artillery.Contains(3))
	assert.False(t, artillery.Contains(4), "upper bound is exclusive")

	for d := 0; d < 5; d++ {
		assert.False(t, Convoy.Range().Contains(d), "convoy is never in range")
	}
}

func TestPieceType_CanSupport(t *testing.T) {
	tests := []struct {
		pieceType PieceType
		attacking bool
		moving    bool
		expected  bool
	}{
		{Artillery, true, false, true},
		{Artillery, false, false, true},
		{Artillery, true, true, false},
		{Artillery, false, true, false},
		{Convoy, true, false, false},
		{Convoy, false, false, false},
		{Convoy, true, true, false},
		{Convoy, false, true, false},
		{Infantry, true, false, true},
		{Infantry, false, false, true},
		{Infantry, true, true, true},
		{Infantry, false, true, false},
		{Recon, true, false, true},
		{Recon, false, false, true},
		{Recon, true, true, true},
		{Recon, false, true, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.pieceType.CanSupport(tt.attacking, tt.moving),
			"%s attacking=%v moving=%v", tt.pieceType, tt.attacking, tt.moving)
	}
}

func TestPieceType_Text(t *testing.T) {
	for _, pt := range PieceTypes {
		text, err := pt.MarshalText()
		require.NoError(t, err)

		var parsed PieceType
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, pt, parsed)
	}

	parsed, err := ParsePieceType(" Recon ")
	require.NoError(t, err)
	assert.Equal(t, Recon, parsed)

	_, err = ParsePieceType("cavalry")
	assert.Error(t, err)

	_, err = PieceType(42).MarshalText()
	assert.Error(t, err)
	assert.False(t, PieceType(42).Valid())
	assert.Panics(t, func() { PieceType(42).Speed() })
}
