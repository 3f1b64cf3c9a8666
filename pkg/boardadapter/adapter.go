// Package boardadapter adapts pkg/board's concrete rules engine to the match.Board
// capability the match driver consumes, translating UCI strings to/from board.Move.
package boardadapter

import (
	"github.com/herohde/gauntlet/pkg/board"
	"github.com/herohde/gauntlet/pkg/match"
)

// Adapter wraps a *board.Board to satisfy match.Board.
type Adapter struct {
	b *board.Board
}

// New creates an adapter over a fresh board at the standard starting position.
func New() *Adapter {
	return &Adapter{b: board.NewInitialBoard()}
}

func (a *Adapter) SetFEN(fen string) error {
	return a.b.SetFEN(fen)
}

func (a *Adapter) SetEPD(epd string) error {
	return a.b.SetEPD(epd)
}

func (a *Adapter) SetChess960(v bool) {
	a.b.SetChess960(v)
}

func (a *Adapter) MakeMove(uci string) bool {
	m, err := a.b.ParseUCIMove(uci)
	if err != nil {
		return false
	}
	return a.b.MakeMove(m)
}

func (a *Adapter) LegalMoves() []string {
	legal := a.b.LegalMoves()
	ret := make([]string, len(legal))
	for i, m := range legal {
		ret[i] = a.b.MoveToUCI(m)
	}
	return ret
}

func (a *Adapter) SideToMove() string {
	if a.b.SideToMove() == board.White {
		return "w"
	}
	return "b"
}

func (a *Adapter) FEN() string {
	return a.b.FEN()
}

func (a *Adapter) FullMoveNumber() int {
	return a.b.FullMoveNumber()
}

func (a *Adapter) HalfmoveClock() int {
	return a.b.HalfmoveClock()
}

func (a *Adapter) IsGameOver() (match.Reason, match.Result) {
	reason, outcome := a.b.IsGameOver()
	return convertReason(reason), convertResult(a.b.SideToMove(), outcome)
}

func (a *Adapter) Clone() match.Board {
	clone, err := board.FromFEN(a.b.FEN())
	if err != nil {
		panic(err) // unreachable: a.b.FEN() always round-trips through FromFEN
	}
	clone.SetChess960(a.b.IsChess960())
	return &Adapter{b: clone}
}

func convertReason(r board.Reason) match.Reason {
	switch r {
	case board.Checkmate:
		return match.Checkmate
	case board.Stalemate:
		return match.Stalemate
	case board.InsufficientMaterial:
		return match.InsufficientMaterial
	case board.ThreefoldRepetition:
		return match.ThreefoldRepetition
	case board.FiftyMoveRule:
		return match.FiftyMoveRule
	default:
		return match.NoReason
	}
}

func convertResult(stm board.Color, o board.Outcome) match.Result {
	switch o {
	case board.Draw:
		return match.Draw
	case board.WhiteWins:
		if stm == board.White {
			return match.Win
		}
		return match.Lose
	case board.BlackWins:
		if stm == board.Black {
			return match.Win
		}
		return match.Lose
	default:
		return match.NoResult
	}
}
