package table

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pyraminx/internal/pyraminx"
)

func TestGenerateSizes(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, 1},
		{1, 9},
		{2, 57},
		{3, 345},
		{4, 2073},
	}

	for _, tt := range tests {
		entries, err := Generate(context.Background(), tt.depth)
		require.NoError(t, err)
		assert.Len(t, entries, tt.want, "depth %d", tt.depth)
	}
}

func TestGenerateEntriesSolve(t *testing.T) {
	entries, err := Generate(context.Background(), 3)
	require.NoError(t, err)

	solved := pyraminx.Solved()
	assert.Equal(t, "", entries[solved.Serialize()])

	for key, sol := range entries {
		moves, err := pyraminx.ParseMoves(sol)
		require.NoError(t, err, "entry %q", sol)
		assert.LessOrEqual(t, len(moves), 3)

		// Walk the solution backwards from solved to rebuild the state.
		p := pyraminx.Solved()
		p.ApplyAll(pyraminx.InvertMoves(moves))
		require.Equal(t, key, p.Serialize(), "entry %q", sol)

		p.ApplyAll(moves)
		assert.Equal(t, solved.Serialize(), p.Serialize(), "entry %q", sol)
	}
}

func TestGenerateSingleTurns(t *testing.T) {
	entries, err := Generate(context.Background(), 1)
	require.NoError(t, err)

	for _, m := range pyraminx.Generators {
		p := pyraminx.Solved()
		p.Apply(m)
		assert.Equal(t, m.Inverse().String(), entries[p.Serialize()])
	}
}

func TestGenerateNegativeDepth(t *testing.T) {
	_, err := Generate(context.Background(), -1)
	assert.ErrorIs(t, err, ErrNegativeDepth)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
