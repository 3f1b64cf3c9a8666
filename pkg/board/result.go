package board

// Outcome represents the outcome of a game, from a neutral point of view.
type Outcome uint8

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// Reason is the rules-engine reason a game ended, matching the stable taxonomy the match
// driver depends on to pick a termination template. None means the game is not over.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	ThreefoldRepetition
	FiftyMoveRule
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return "none"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FiftyMoveRule:
		return "fifty-move rule"
	default:
		return "?"
	}
}

// GameResult pairs a rules-engine reason with its outcome.
type GameResult struct {
	Outcome Outcome
	Reason  Reason
}

// Loss returns the Outcome in which c loses.
func Loss(c Color) Outcome {
	if c == White {
		return BlackWins
	}
	return WhiteWins
}

// Win returns the Outcome in which c wins.
func Win(c Color) Outcome {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}
