package match

// Reason is the rules-engine reason a game ended. None means the game is not over.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	ThreefoldRepetition
	FiftyMoveRule
)

// Result is a game outcome, from the side-to-move's perspective.
type Result uint8

const (
	NoResult Result = iota
	Win
	Lose
	Draw
)

// Board is the rules-engine capability the driver consumes. It is never implemented in
// this package; pkg/board's *board.Board satisfies it via the small adapter in
// pkg/boardadapter (see adapter.go).
type Board interface {
	// SetFEN resets the board to the given FEN string.
	SetFEN(fen string) error
	// SetEPD resets the board to the given EPD string (';'-delimited operations ignored).
	SetEPD(epd string) error
	// SetChess960 toggles Chess960 UCI castling notation.
	SetChess960(v bool)

	// MakeMove applies a legal move, identified by its UCI string. Returns false if the
	// string does not name a legal move in the current position.
	MakeMove(uci string) bool
	// LegalMoves returns every legal move in the current position, as UCI strings.
	LegalMoves() []string

	// SideToMove returns "w" or "b".
	SideToMove() string
	// FEN returns the current position in FEN notation.
	FEN() string
	// FullMoveNumber returns the current full-move number (starts at 1).
	FullMoveNumber() int
	// HalfmoveClock returns the number of plies since the last pawn move or capture.
	HalfmoveClock() int

	// IsGameOver reports whether the game is over, and why, from the side-to-move's
	// perspective. Reason is NoReason if the game is not over, in which case Result is
	// NoResult.
	IsGameOver() (Reason, Result)

	// Clone returns an independent copy of the board, used by PV-line verification so that
	// diagnostic move application never mutates the real game state.
	Clone() Board
}
