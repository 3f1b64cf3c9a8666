package match_test

import "github.com/herohde/gauntlet/pkg/match"

// fakeBoard is a minimal match.Board test double. It does not enforce chess rules: any
// move in legalMoves is "legal" at any ply, and a test configures when (if ever) the game
// is over. This isolates match.Driver's state machine from pkg/board entirely.
type fakeBoard struct {
	fen      string
	turn     string
	fullmove int
	halfmove int
	chess960 bool

	legalMoves []string

	overAtPly  int // len(moves) at which IsGameOver starts reporting overReason/overResult
	overReason match.Reason
	overResult match.Result

	moves []string
}

func newFakeBoard(legalMoves ...string) *fakeBoard {
	return &fakeBoard{fen: "startpos", turn: "w", fullmove: 1, legalMoves: legalMoves}
}

func (b *fakeBoard) SetFEN(fen string) error { b.fen = fen; return nil }
func (b *fakeBoard) SetEPD(epd string) error { b.fen = epd; return nil }
func (b *fakeBoard) SetChess960(v bool)      { b.chess960 = v }

func (b *fakeBoard) MakeMove(uci string) bool {
	ok := false
	for _, m := range b.legalMoves {
		if m == uci {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}

	b.moves = append(b.moves, uci)
	if b.turn == "b" {
		b.fullmove++
	}
	b.halfmove++
	if b.turn == "w" {
		b.turn = "b"
	} else {
		b.turn = "w"
	}
	return true
}

func (b *fakeBoard) LegalMoves() []string { return append([]string(nil), b.legalMoves...) }
func (b *fakeBoard) SideToMove() string   { return b.turn }
func (b *fakeBoard) FEN() string          { return b.fen }
func (b *fakeBoard) FullMoveNumber() int  { return b.fullmove }
func (b *fakeBoard) HalfmoveClock() int   { return b.halfmove }

func (b *fakeBoard) IsGameOver() (match.Reason, match.Result) {
	if b.overAtPly > 0 && len(b.moves) >= b.overAtPly {
		return b.overReason, b.overResult
	}
	return match.NoReason, match.NoResult
}

func (b *fakeBoard) Clone() match.Board {
	cp := *b
	cp.moves = append([]string(nil), b.moves...)
	cp.legalMoves = append([]string(nil), b.legalMoves...)
	return &cp
}
