package console

import (
	"bytes"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBoard(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, RenderBoard(&buf, [3][3]entity.Mark{}))

		expected := "" +
			" - | - | -     0 | 1 | 2\n" +
			"---+---+---    ---+---+---\n" +
			" - | - | -     3 | 4 | 5\n" +
			"---+---+---    ---+---+---\n" +
			" - | - | -     6 | 7 | 8\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Marks use o and x", func(t *testing.T) {
		var buf bytes.Buffer
		o, x, e := entity.PlayerOne, entity.PlayerTwo, entity.Empty

		require.NoError(t, RenderBoard(&buf, [3][3]entity.Mark{
			{o, x, e},
			{e, o, e},
			{x, e, o},
		}))

		assert.Contains(t, buf.String(), " o | x | -     0 | 1 | 2\n")
		assert.Contains(t, buf.String(), " - | o | -     3 | 4 | 5\n")
		assert.Contains(t, buf.String(), " x | - | o     6 | 7 | 8\n")
	})
}

func TestRenderScores(t *testing.T) {
	var buf bytes.Buffer

	err := RenderScores(&buf, [2]tictactoe.PlayerState{
		{Name: "Alice", Mark: entity.PlayerOne, Score: 2},
		{Name: "Bob", Mark: entity.PlayerTwo, Score: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice (o): 2   Bob (x): 1\n", buf.String())
}
