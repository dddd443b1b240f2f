package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	DefaultPlayerOneName = "Player One"
	DefaultPlayerTwoName = "Player Two"
)

type Outcome int

const (
	InProgress Outcome = iota
	Won
	Tied
)

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Tied:
		return "tied"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

// PlayerState is a read-only snapshot of a player.
type PlayerState struct {
	Name  string
	Mark  entity.Mark
	Score int
}

// GameController drives turns, outcome and score for a single board.
// It is not safe for concurrent use.
type GameController struct {
	board   *entity.Board
	players [2]*entity.Player
	active  int
	outcome Outcome
}

// NewGameController creates a game with Player One (mark o) to move. Empty names fall back to the defaults.
func NewGameController(playerOneName, playerTwoName string) *GameController {
	if playerOneName == "" {
		playerOneName = DefaultPlayerOneName
	}

	if playerTwoName == "" {
		playerTwoName = DefaultPlayerTwoName
	}

	return &GameController{
		board: entity.NewBoard(),
		players: [2]*entity.Player{
			entity.NewPlayer(playerOneName, entity.PlayerOne),
			entity.NewPlayer(playerTwoName, entity.PlayerTwo),
		},
		outcome: InProgress,
	}
}

// PlayRound places the active player's mark at position and advances the game.
// A play on an occupied cell is absorbed: the turn does not change.
func (that *GameController) PlayRound(position int) error {
	if that.outcome != InProgress {
		return apperror.ErrGameFinished
	}

	player := that.players[that.active]

	placed, err := that.board.PlaceMark(position, player.Mark())
	if err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	// occupied cell: nothing changed on the board, so neither does the turn
	if !placed {
		return nil
	}

	switch {
	case that.board.CheckWinner():
		that.outcome = Won
		player.AddWin()
	case that.board.BoardFull():
		that.outcome = Tied
	default:
		that.switchPlayerTurn()
	}

	return nil
}

// Reset clears the board for a new game. Scores are kept.
func (that *GameController) Reset() {
	that.board.Reset()
	that.outcome = InProgress
	that.active = 0
}

// ActivePlayer returns the player to move, or the winner once the game is won.
func (that *GameController) ActivePlayer() PlayerState {
	return snapshot(that.players[that.active])
}

func (that *GameController) Players() [2]PlayerState {
	return [2]PlayerState{snapshot(that.players[0]), snapshot(that.players[1])}
}

func (that *GameController) Outcome() Outcome {
	return that.outcome
}

func (that *GameController) Board() [entity.Rows][entity.Columns]entity.Mark {
	return that.board.Cells()
}

// Winner returns the mark holding a completed line, or entity.Empty while nobody has won.
func (that *GameController) Winner() entity.Mark {
	return that.board.Winner()
}

func (that *GameController) switchPlayerTurn() {
	that.active = 1 - that.active
}

func snapshot(player *entity.Player) PlayerState {
	return PlayerState{
		Name:  player.Name(),
		Mark:  player.Mark(),
		Score: player.Score(),
	}
}
