package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"amazons/game"
	"amazons/gamemaster"
	"amazons/searcher/agent"
)

type Controller interface {
	Run() error
}

// textController lets a human on in/out play one side against an agent.
type textController struct {
	human  game.Piece
	ai     agent.Agent
	engine gamemaster.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func NewTextController(human game.Piece, ai agent.Agent, engine gamemaster.Engine, in io.Reader, out io.Writer) *textController {
	return &textController{
		human:  human,
		ai:     ai,
		engine: engine,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run plays one game. Besides moves, the human may enter "undo" to take back
// their last move, "board" to show the position and "quit" to stop.
func (c *textController) Run() error {
	board, getUpdate := c.engine.Init()
	fmt.Fprint(c.out, board)

	for c.engine.Winner() == game.Empty {
		if c.engine.Turn() != c.human {
			move, _, err := c.engine.RequestMove(c.ai)
			if err != nil {
				return err
			}
			if err := c.engine.Play(move); err != nil {
				return fmt.Errorf("agent played %s: %w", move, err)
			}
			c.report(getUpdate)
			continue
		}

		fmt.Fprintf(c.out, "%s> ", c.human.Name())
		if !c.in.Scan() {
			return c.in.Err() // Input closed
		}
		switch line := strings.TrimSpace(c.in.Text()); line {
		case "":
		case "quit":
			return nil
		case "board":
			fmt.Fprint(c.out, c.engine.Render())
		case "undo":
			c.undo()
		default:
			move, err := game.ParseMove(line)
			if err == nil {
				err = c.engine.Play(move)
			}
			if err != nil {
				fmt.Fprintf(c.out, "%v\n", err)
				continue
			}
			c.report(getUpdate)
		}
	}

	fmt.Fprintf(c.out, "%s wins.\n", c.engine.Winner().Name())
	return nil
}

// undo takes moves back until the human is on turn with one move fewer.
func (c *textController) undo() {
	for {
		err := c.engine.Undo()
		if errors.Is(err, gamemaster.ErrNothingToUndo) {
			fmt.Fprintln(c.out, "nothing to undo")
			return
		}
		if c.engine.Turn() == c.human {
			fmt.Fprint(c.out, c.engine.Render())
			return
		}
	}
}

func (c *textController) report(getUpdate gamemaster.UpdateGetter) {
	for u, ok := getUpdate(); ok; u, ok = getUpdate() {
		side := u.Board.Turn().Opponent()
		fmt.Fprintf(c.out, "%s plays %s\n", side.Name(), u.Move)
		fmt.Fprint(c.out, u.Board)
	}
}
