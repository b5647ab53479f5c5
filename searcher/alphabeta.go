package searcher

import (
	"errors"
	"fmt"

	"amazons/game"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNoMoves is returned when the board is decided or the side has no move.
	ErrNoMoves = errors.New("no move to choose")
	// ErrWrongSide is returned when asked to move for the side not on turn.
	ErrWrongSide = errors.New("side is not on turn")
)

type Option func(a *AlphaBeta)

// Result is the outcome of one root search.
type Result struct {
	Move   game.Move
	Score  int
	Metric SearchMetric
}

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning.
// Searches share no state, so one AlphaBeta may serve concurrent games.
type AlphaBeta struct {
	maxDepth   int
	fixedDepth int
	strict     bool
	evaluate   game.Evaluate
	collect    bool
}

// WithMaxDepth caps the adaptive depth.
func WithMaxDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.maxDepth = depth
		}
	}
}

// WithFixedDepth searches exactly depth plies regardless of the position.
func WithFixedDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.fixedDepth = depth
		}
	}
}

// WithStrictPruning disables the static-score shortcut so every node inside
// the window is expanded.
func WithStrictPruning() Option {
	return func(a *AlphaBeta) {
		a.strict = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.collect = true
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		maxDepth: MaxDepth,
		evaluate: game.Score,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Depth returns the number of plies a search from b will look ahead.
func (a *AlphaBeta) Depth(b *game.Board) int {
	if a.fixedDepth > 0 {
		return a.fixedDepth
	}
	return min(AdaptiveDepth(b), a.maxDepth)
}

// ChooseMove returns the best move for side, which must be on turn in b.
// b is not modified.
func (a *AlphaBeta) ChooseMove(b *game.Board, side game.Piece) (game.Move, error) {
	if side != b.Turn() {
		return game.Move{}, fmt.Errorf("%w: %s asked to move on %s's turn", ErrWrongSide, side.Name(), b.Turn().Name())
	}
	result, err := a.Search(b)
	if err != nil {
		return game.Move{}, err
	}
	return result.Move, nil
}

// Search runs a full-window search for the side to move in b.
func (a *AlphaBeta) Search(b *game.Board) (Result, error) {
	if b.Winner() != game.Empty {
		return Result{}, fmt.Errorf("%w: %s has already won", ErrNoMoves, b.Winner().Name())
	}

	run := &searchRun{AlphaBeta: a, metrics: NewDummyCollector()}
	if a.collect {
		run.metrics = NewCollector()
	}
	depth := a.Depth(b)
	run.metrics.Start(depth)

	score, move, found := run.search(b, depth, senseOf(b.Turn()), -Infinity, Infinity)
	metric := run.metrics.Complete()
	if !found {
		return Result{Metric: metric}, fmt.Errorf("%w: %s is stuck", ErrNoMoves, b.Turn().Name())
	}

	log.Debug().
		Str("side", b.Turn().Name()).
		Str("move", move.String()).
		Int("score", score).
		Int("depth", depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Int("shortcuts", metric.Shortcuts).
		Dur("elapsed", metric.Duration).
		Msg("search complete")

	return Result{Move: move, Score: score, Metric: metric}, nil
}

type searchRun struct {
	*AlphaBeta
	metrics Collector
}

// search returns the minimax value of b within (alpha, beta), looking depth
// plies ahead, and the move that achieves it. sense is +1 when White is
// maximising and -1 when Black is minimising. found is false when no child
// was expanded.
func (r *searchRun) search(b *game.Board, depth, sense, alpha, beta int) (score int, best game.Move, found bool) {
	r.metrics.AddNode()
	if depth == 0 || b.Winner() != game.Empty {
		return r.terminal(b, depth), best, false
	}

	if !r.strict {
		static := r.evaluate(b)
		if (sense > 0 && static >= beta) || (sense < 0 && static <= alpha) {
			r.metrics.AddShortcut()
			return static, best, false
		}
	}

	for m := range b.LegalMovesFor(sideOf(sense)) {
		child := b.Clone()
		if err := child.ApplyMove(m); err != nil {
			panic(fmt.Sprintf("enumerated move rejected: %v", err))
		}
		value, _, _ := r.search(child, depth-1, -sense, alpha, beta)

		if !found || (sense > 0 && value > score) || (sense < 0 && value < score) {
			score, best, found = value, m, true
		}
		if sense > 0 {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
		if alpha >= beta {
			r.metrics.AddCutoff()
			break
		}
	}

	if !found {
		return r.evaluate(b), best, false
	}
	return score, best, true
}

// terminal scores a leaf. Decided games score beyond WinningValue by the
// plies left, so a quicker win outranks a slower one.
func (r *searchRun) terminal(b *game.Board, depth int) int {
	switch b.Winner() {
	case game.White:
		return game.WinningValue + depth
	case game.Black:
		return -game.WinningValue - depth
	}
	return r.evaluate(b)
}

func senseOf(side game.Piece) int {
	if side == game.Black {
		return -1
	}
	return 1
}

func sideOf(sense int) game.Piece {
	if sense < 0 {
		return game.Black
	}
	return game.White
}
