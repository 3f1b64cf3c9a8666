package match

import "time"

// Variant selects whether the Board's Chess960 flag (castling notation) is set.
type Variant uint8

const (
	Standard Variant = iota
	FRC              // Fischer Random / Chess960
)

// TimeControl is one side's clock policy: a base budget, a per-move increment, and an
// optional moves-to-go horizon (0 means "rest of game").
type TimeControl struct {
	Base      time.Duration
	Increment time.Duration
	MovesToGo int
}

// DrawAdjudicationOptions configures the draw tracker (§4.8.2).
type DrawAdjudicationOptions struct {
	Enabled         bool
	ScoreCPThreshold int // |score| must stay within this many centipawns
	MoveCount       int // consecutive plies required
	MinPly          int // earliest ply (by fullmove number) the tracker may fire
}

// ResignAdjudicationOptions configures the resign tracker (§4.8.1).
type ResignAdjudicationOptions struct {
	Enabled         bool
	ScoreCPThreshold int // score must be at or below -threshold
	MoveCount       int // consecutive plies required
	TwoSided        bool // require both engines to agree, not just the side about to lose
}

// MaxMovesOptions configures the max-moves tracker (§4.8.3).
type MaxMovesOptions struct {
	Enabled bool
	Limit   int // fullmove number at which the match is drawn
}

// TournamentOptions is the policy a tournament layer hands to the driver for one match.
type TournamentOptions struct {
	Variant Variant

	Draw     DrawAdjudicationOptions
	Resign   ResignAdjudicationOptions
	MaxMoves MaxMovesOptions

	// TimeoutGraceMS is added to a player's remaining time to form read_engine's deadline,
	// absorbing process-scheduling and I/O jitter that isn't the engine's fault.
	TimeoutGraceMS int
}

// EngineConfig is an engine's static descriptor, returned by EngineHandle.Config.
type EngineConfig struct {
	Name       string
	Path       string
	Args       []string
	UCIOptions map[string]string
}

// Opening is the starting position and any forced prefix moves, consumed once by prepare.
type Opening struct {
	StartingPosition string // FEN (no ';') or EPD (has ';')
	PrefixMoves      []string // UCI move strings, applied in order before play begins
}
