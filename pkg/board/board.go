// Package board contains chess board representation, move generation, and game-over rules
// (checkmate, stalemate, insufficient material, threefold repetition, fifty-move rule).
package board

import "fmt"

const (
	repetitionLimit    = 3
	noprogressPlyLimit = 100 // 50 moves by each side
)

const zobristSeed = 0xC0FFEE // fixed: repetition hashing needs no cross-run randomness

type node struct {
	pos        *Position
	hash       ZobristHash
	noprogress int

	next Move // if not current
	prev *node
}

// Board represents a chess board, metadata, and history of positions, sufficient to
// correctly determine game-over conditions. Not thread-safe.
type Board struct {
	zt          *ZobristTable
	repetitions map[ZobristHash]int

	fullmoves int
	turn      Color
	result    GameResult
	chess960  bool
	current   *node
}

// NewBoard creates a board at the given position.
func NewBoard(pos *Position, turn Color, noprogress, fullmoves int) *Board {
	zt := NewZobristTable(zobristSeed)
	current := &node{
		pos:        pos,
		noprogress: noprogress,
		hash:       zt.Hash(pos, turn),
	}

	return &Board{
		zt:          zt,
		repetitions: map[ZobristHash]int{current.hash: 1},
		fullmoves:   fullmoves,
		turn:        turn,
		current:     current,
	}
}

// NewInitialBoard creates a board at the standard starting position.
func NewInitialBoard() *Board {
	b, err := FromFEN(InitialFEN)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in initial position: %v", err)) // unreachable
	}
	return b
}

// SetChess960 toggles Chess960 (Fischer Random) UCI castling notation ("king takes own
// rook"). Castling move generation does not change: it only castles a king on the e-file
// with rooks on the a- and h-files.
func (b *Board) SetChess960(v bool) {
	b.chess960 = v
}

// IsChess960 returns whether Chess960 rules are in effect.
func (b *Board) IsChess960() bool {
	return b.chess960
}

func (b *Board) Position() *Position {
	return b.current.pos
}

// SideToMove returns the color on move.
func (b *Board) SideToMove() Color {
	return b.turn
}

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (b *Board) HalfmoveClock() int {
	return b.current.noprogress
}

// FullMoveNumber returns the current full-move number (starts at 1, increments after Black
// moves).
func (b *Board) FullMoveNumber() int {
	return b.fullmoves
}

// Result returns the currently adjudicated result, if any.
func (b *Board) Result() GameResult {
	return b.result
}

// LegalMoves returns every legal move for the side to move: pseudo-legal moves filtered to
// those that do not leave the mover's own king in check.
func (b *Board) LegalMoves() []Move {
	turn := b.turn
	candidates := b.current.pos.PseudoLegalMoves(turn)

	ret := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		next := b.current.pos.Move(turn, m)
		if !next.IsChecked(turn) {
			ret = append(ret, m)
		}
	}
	return ret
}

// MakeMove applies m if it is legal and returns true. Otherwise the board is unchanged and
// false is returned.
func (b *Board) MakeMove(m Move) bool {
	if b.result.Reason == Checkmate || b.result.Reason == Stalemate {
		return false // no legal moves
	}

	match, ok := matchLegalMove(b.LegalMoves(), m)
	if !ok {
		return false
	}

	next := b.current.pos.Move(b.turn, match)

	n := &node{
		pos:        next,
		hash:       b.zt.Hash(next, b.turn.Opponent()),
		noprogress: updateNoProgress(b.current.noprogress, match),
		prev:       b.current,
	}

	b.current.next = match
	b.current = n

	b.turn = b.turn.Opponent()
	b.repetitions[b.current.hash]++
	if b.turn == White {
		b.fullmoves++
	}

	b.result = GameResult{}
	if b.repetitions[b.current.hash] >= repetitionLimit {
		b.result = GameResult{Outcome: Draw, Reason: ThreefoldRepetition}
	}
	if b.current.noprogress >= noprogressPlyLimit {
		b.result = GameResult{Outcome: Draw, Reason: FiftyMoveRule}
	}
	if next.HasInsufficientMaterial() {
		b.result = GameResult{Outcome: Draw, Reason: InsufficientMaterial}
	}

	return true
}

// matchLegalMove finds the legal move matching m's From/To/Promotion, returning the legal
// move's own Type/Capture metadata (the caller's m may be a bare UCI-derived move with
// those fields zeroed).
func matchLegalMove(legal []Move, m Move) (Move, bool) {
	for _, l := range legal {
		if l.From == m.From && l.To == m.To && l.Promotion == m.Promotion {
			return l, true
		}
	}
	return Move{}, false
}

// IsGameOver reports whether the game is over, and why. The Outcome is neutral (WhiteWins,
// BlackWins or Draw), not relative to the side to move. Reason is NoReason if the game is
// not over.
func (b *Board) IsGameOver() (Reason, Outcome) {
	if b.result.Reason != NoReason {
		return b.result.Reason, b.result.Outcome
	}
	if len(b.LegalMoves()) == 0 {
		if b.current.pos.IsChecked(b.turn) {
			b.result = GameResult{Outcome: Loss(b.turn), Reason: Checkmate}
		} else {
			b.result = GameResult{Outcome: Draw, Reason: Stalemate}
		}
		return b.result.Reason, b.result.Outcome
	}
	return NoReason, Undecided
}

func (b *Board) String() string {
	return fmt.Sprintf("board{pos=%v, turn=%v, noprogress=%v, fullmoves=%v, result=%v}",
		b.current.pos, b.turn, b.current.noprogress, b.fullmoves, b.result)
}

func updateNoProgress(old int, m Move) int {
	switch m.Type {
	case Normal, KingSideCastle, QueenSideCastle:
		return old + 1
	default:
		return 0 // pawn move, capture, en passant, or promotion resets the clock
	}
}
