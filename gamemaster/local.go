package gamemaster

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"amazons/game"
	"amazons/searcher"
	"amazons/searcher/agent"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrNothingToUndo = errors.New("no move to undo")
)

// Update is published after every accepted move.
type Update struct {
	Move  game.Move
	Board *game.Board // Snapshot after the move
	Hash  uint64
}

// UpdateGetter returns the next unread update. ok is false when there is
// none yet or the game is over and every update has been read.
type UpdateGetter func() (u Update, ok bool)

type Engine interface {
	Init() (*game.Board, UpdateGetter)
	Setup(*game.Board) (*game.Board, UpdateGetter)
	Play(game.Move) error
	Undo() error
	Board() *game.Board
	Turn() game.Piece
	Winner() game.Piece
	LegalMoves() iter.Seq[game.Move]
	Render() string
	RequestMove(agent.Agent) (game.Move, searcher.SearchMetric, error)
}

var _ Engine = (*localEngine)(nil)

// updateBuffer holds every update of a game, since each move adds a spear.
const updateBuffer = game.NumSquares

type localEngine struct {
	mu       sync.Mutex
	board    *game.Board
	updateCh chan Update
	gameOver bool
}

func NewLocalEngine() *localEngine {
	e := &localEngine{}
	e.Init()
	return e
}

// Init starts a new game from the opening position.
func (e *localEngine) Init() (*game.Board, UpdateGetter) {
	return e.Setup(game.NewBoard())
}

// Setup starts a session from a copy of b, e.g. a composed puzzle.
func (e *localEngine) Setup(b *game.Board) (*game.Board, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.board = b.Clone()
	e.gameOver = e.board.Winner() != game.Empty
	e.updateCh = make(chan Update, updateBuffer)
	if e.gameOver {
		close(e.updateCh)
	}

	return e.board.Clone(), e.nextUpdate
}

func (e *localEngine) nextUpdate() (Update, bool) {
	e.mu.Lock()
	ch := e.updateCh
	e.mu.Unlock()

	select {
	case u, ok := <-ch:
		return u, ok
	default:
		// No updates yet
		return Update{}, false
	}
}

// Play applies move for the side on turn.
func (e *localEngine) Play(move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gameOver {
		return ErrGameOver
	}
	if err := e.board.ApplyMove(move); err != nil {
		return err
	}

	e.publish(Update{Move: move, Board: e.board.Clone(), Hash: e.board.Hash()})
	if e.board.Winner() != game.Empty {
		e.gameOver = true
		close(e.updateCh)
	}
	return nil
}

// publish queues u, dropping the oldest unread update when the buffer is full.
func (e *localEngine) publish(u Update) {
	for {
		select {
		case e.updateCh <- u:
			return
		default:
			dropped := <-e.updateCh
			log.Warn().Msgf("update buffer full, dropped update for %s", dropped.Move)
		}
	}
}

// Undo takes back the last move. Undoing the winning move resumes the game
// with a fresh update feed.
func (e *localEngine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.board.NumMoves() == 0 {
		return ErrNothingToUndo
	}
	e.board.Undo()
	if e.gameOver {
		e.gameOver = false
		e.updateCh = make(chan Update, updateBuffer)
	}
	return nil
}

// Board returns a snapshot of the current position.
func (e *localEngine) Board() *game.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Clone()
}

func (e *localEngine) Turn() game.Piece {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Turn()
}

func (e *localEngine) Winner() game.Piece {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Winner()
}

// LegalMoves yields the moves of the side on turn, enumerated on a snapshot
// so the session may change while the caller iterates.
func (e *localEngine) LegalMoves() iter.Seq[game.Move] {
	return e.Board().LegalMoves()
}

func (e *localEngine) Render() string {
	return e.Board().String()
}

// RequestMove asks a for a move in the current position without playing it.
func (e *localEngine) RequestMove(a agent.Agent) (game.Move, searcher.SearchMetric, error) {
	b := e.Board()
	if b.Winner() != game.Empty {
		return game.Move{}, searcher.SearchMetric{}, ErrGameOver
	}
	move, metric, err := a.FindMove(b)
	if err != nil {
		return game.Move{}, metric, fmt.Errorf("agent failed to move for %s: %w", b.Turn().Name(), err)
	}
	return move, metric, nil
}
