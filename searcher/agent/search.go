package agent

import (
	"amazons/game"
	"amazons/searcher"
)

type searchAgent struct {
	searcher *searcher.AlphaBeta
}

// NewSearchAgent returns an agent that plays the alpha-beta searcher's choice.
func NewSearchAgent(ab *searcher.AlphaBeta) Agent {
	return searchAgent{searcher: ab}
}

func (a searchAgent) FindMove(b *game.Board) (game.Move, searcher.SearchMetric, error) {
	result, err := a.searcher.Search(b)
	if err != nil {
		return game.Move{}, result.Metric, err
	}
	return result.Move, result.Metric, nil
}
