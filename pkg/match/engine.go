package match

import "time"

// ReadStatus is the outcome of a read_engine call.
type ReadStatus uint8

const (
	Ok ReadStatus = iota
	Err
	TimedOut
)

// ScoreType classifies a parsed engine score.
type ScoreType uint8

const (
	ScoreErr ScoreType = iota
	ScoreCP
	ScoreMate
)

// EngineHandle is the subprocess-transport capability the driver consumes. Every
// operation is synchronous from the driver's viewpoint; a real implementation
// (pkg/uciengine) owns the child process and its pipes, a test double drives scenarios
// deterministically (see fakeengine_test.go).
type EngineHandle interface {
	// RefreshUCI resets per-game protocol state: sends "ucinewgame" then "isready".
	RefreshUCI() bool
	// SetCPUs is a best-effort CPU pin; may no-op.
	SetCPUs(cpus []int)
	// IsReady sends "isready" and waits for "readyok". False on I/O failure or death.
	IsReady() bool
	// Position sends "position <start> moves history...". False on I/O failure.
	Position(history []string, start string) bool
	// Go sends "go" with time/increment/movestogo derived from both time controls and the
	// side to move. False on I/O failure.
	Go(mine, theirs TimeControl, stm string) bool
	// ReadEngine reads engine output until a line containing token appears, the timeout
	// elapses, or the process dies.
	ReadEngine(token string, timeout time.Duration) ReadStatus
	// WriteEngine is a fire-and-forget line send (used to send "stop").
	WriteEngine(line string)

	// Output returns the lines produced during the most recent search, in order.
	Output() []string
	// BestMove returns the UCI move from the most recent "bestmove" line, if any.
	BestMove() (string, bool)
	// OutputIncludesBestMove is a convenience predicate over Output.
	OutputIncludesBestMove() bool

	// LastScore and LastScoreType are derived from the final scored info line of the most
	// recent search.
	LastScore() int
	LastScoreType() ScoreType
	// LastInfo returns the most recent info line carrying a score, or "" if none.
	LastInfo() string

	// Config returns the engine's static descriptor.
	Config() EngineConfig
	// WriteLog flushes the internal protocol trace.
	WriteLog()
}
