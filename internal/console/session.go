package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const helpText = `Commands:
  0-8     place your mark at that position
  reset   clear the board (scores are kept)
  help    show this message
  quit    leave the game
`

type game interface {
	PlayRound(position int) error
	Reset()

	ActivePlayer() tictactoe.PlayerState
	Players() [2]tictactoe.PlayerState
	Outcome() tictactoe.Outcome
	Winner() entity.Mark
	Board() [entity.Rows][entity.Columns]entity.Mark
}

// Session is the screen controller: it renders the game and forwards picks to it.
type Session struct {
	logger *slog.Logger
	game   game

	in  io.Reader
	out io.Writer

	confirmNewGame  bool
	awaitingConfirm bool
}

type input struct {
	line string
	err  error
}

func New(logger *slog.Logger, game game, in io.Reader, out io.Writer, confirmNewGame bool) *Session {
	return &Session{
		logger: logger.With("component", "console", "session_id", uuid.NewString()),
		game:   game,

		in:  in,
		out: out,

		confirmNewGame: confirmNewGame,
	}
}

// Run reads commands until quit, end of input or ctx cancellation.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	log.Info("session started")

	if err := that.render(); err != nil {
		return err
	}

	lines := that.readLines(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("session canceled")
			return ctx.Err()
		case in, ok := <-lines:
			if !ok {
				log.Info("input closed")
				return nil
			}

			if in.err != nil {
				return fmt.Errorf("failed to read input: %w", in.err)
			}

			quit, err := that.handleLine(in.line)
			if err != nil {
				return err
			}

			if quit {
				log.Info("session finished", "scores", that.game.Players())
				return nil
			}
		}
	}
}

// handleLine processes one line of input. It reports whether the session should end.
func (that *Session) handleLine(line string) (bool, error) {
	command := strings.ToLower(strings.TrimSpace(line))

	switch command {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, that.printf("Bye!\n")
	case "h", "help", "?":
		return false, that.printf(helpText)
	case "r", "reset":
		return false, that.newGame()
	}

	if that.awaitingConfirm {
		return false, that.handleConfirm(command)
	}

	position, err := parsePosition(command)
	if err != nil {
		that.logger.Debug("rejected input", "input", command, "error", err)
		return false, that.printf("Invalid position %q: choose a number from 0 to 8.\n", command)
	}

	return false, that.playRound(position)
}

func (that *Session) playRound(position int) error {
	log := that.logger.With("method", "playRound")

	player := that.game.ActivePlayer()

	if err := that.game.PlayRound(position); err != nil {
		if errors.Is(err, apperror.ErrGameFinished) {
			return that.printf("The game is over. Type reset to start a new one.\n")
		}

		log.Error("failed to play round", "position", position, "error", err)
		return that.printf("Could not play %d: %v\n", position, err)
	}

	log.Debug("round played", "player", player.Name, "position", position, "outcome", that.game.Outcome().String())

	if err := that.render(); err != nil {
		return err
	}

	return that.announce()
}

// announce reports a finished game and either asks for or starts the next one.
func (that *Session) announce() error {
	log := that.logger.With("method", "announce")

	switch that.game.Outcome() {
	case tictactoe.Won:
		winner := that.game.ActivePlayer()
		log.Info("game won", "winner", winner.Name, "mark", that.game.Winner().Symbol(), "score", winner.Score)

		if err := that.printf("%s Wins!\n", winner.Name); err != nil {
			return err
		}
	case tictactoe.Tied:
		log.Info("game tied")

		if err := that.printf("It's a Tie!\n"); err != nil {
			return err
		}
	default:
		return nil
	}

	if !that.confirmNewGame {
		return that.newGame()
	}

	that.awaitingConfirm = true

	return that.printf("Would you like to start a new game? [y/n] ")
}

func (that *Session) handleConfirm(answer string) error {
	switch answer {
	case "y", "yes":
		return that.newGame()
	case "n", "no":
		that.awaitingConfirm = false
		return that.printf("Type reset to start a new game or quit to leave.\n")
	default:
		return that.printf("Please answer y or n: ")
	}
}

func (that *Session) newGame() error {
	that.awaitingConfirm = false
	that.game.Reset()

	that.logger.Debug("new game started")

	return that.render()
}

func (that *Session) render() error {
	if err := that.printf("\n"); err != nil {
		return err
	}

	if err := RenderBoard(that.out, that.game.Board()); err != nil {
		return err
	}

	if err := RenderScores(that.out, that.game.Players()); err != nil {
		return err
	}

	if that.game.Outcome() != tictactoe.InProgress {
		return nil
	}

	player := that.game.ActivePlayer()

	return that.printf("%s's turn (%s). Pick a position 0-8: ", player.Name, player.Mark)
}

func (that *Session) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// readLines scans in on its own goroutine. A Scan blocked on a reader that never
// delivers (a terminal stdin) outlives a canceled ctx until the reader returns;
// RunApp only cancels on process shutdown.
func (that *Session) readLines(ctx context.Context) <-chan input {
	lines := make(chan input)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- input{line: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case lines <- input{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

// parsePosition validates user input before it reaches the game.
func parsePosition(text string) (int, error) {
	position, err := strconv.Atoi(text)
	if err != nil || position < 0 || position >= entity.Size {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, text)
	}

	return position, nil
}
