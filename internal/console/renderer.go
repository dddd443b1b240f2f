package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const rowSeparator = "---+---+---"

// RenderBoard writes the board next to a key of the positions a player can pick.
func RenderBoard(w io.Writer, board [entity.Rows][entity.Columns]entity.Mark) error {
	var sb strings.Builder

	for row := 0; row < entity.Rows; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator + "    " + rowSeparator + "\n")
		}

		marks := make([]string, 0, entity.Columns)
		positions := make([]string, 0, entity.Columns)
		for col := 0; col < entity.Columns; col++ {
			marks = append(marks, board[row][col].Symbol())
			positions = append(positions, fmt.Sprint(row*entity.Columns+col))
		}

		fmt.Fprintf(&sb, " %s     %s\n", strings.Join(marks, " | "), strings.Join(positions, " | "))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// RenderScores writes one line with both players' running scores.
func RenderScores(w io.Writer, players [2]tictactoe.PlayerState) error {
	_, err := fmt.Fprintf(w, "%s (%s): %d   %s (%s): %d\n",
		players[0].Name, players[0].Mark, players[0].Score,
		players[1].Name, players[1].Mark, players[1].Score,
	)
	if err != nil {
		return fmt.Errorf("failed to write scores: %w", err)
	}

	return nil
}
