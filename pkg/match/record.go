package match

import (
	"fmt"
	"strings"
	"time"
)

// Termination classifies how a match ended; exactly one value is assigned per match (§3).
type Termination uint8

const (
	Normal Termination = iota
	Adjudication
	Timeout
	IllegalMove
	Disconnect
	Interrupt
)

func (t Termination) String() string {
	switch t {
	case Normal:
		return "normal"
	case Adjudication:
		return "adjudication"
	case Timeout:
		return "timeout"
	case IllegalMove:
		return "illegal_move"
	case Disconnect:
		return "disconnect"
	case Interrupt:
		return "interrupt"
	default:
		return "?"
	}
}

// MoveData is one record per ply (§3).
type MoveData struct {
	Move        string
	ScoreString string
	Score       int
	ScoreType   ScoreType
	TimeMS      int64
	Depth       int
	SelDepth    int
	NPS         int
	HashFull    int
	TBHits      int
	Nodes       int
	Legal       bool
	FromOpening bool
}

// PlayerInfo pairs an engine's static config with its match result and color.
type PlayerInfo struct {
	Config EngineConfig
	Result Result
	Color  string
}

// MatchData is the canonical per-match record the driver returns (§3).
type MatchData struct {
	StartFEN  string
	Moves     []MoveData
	Players   [2]PlayerInfo
	Termination Termination
	Reason    string
	EndTime   time.Time
	Duration  time.Duration

	// CrashOrDisconnect is a sticky flag set on Disconnect, exposed so the tournament layer
	// can re-schedule or penalize (§4.5).
	CrashOrDisconnect bool
}

// DurationString renders Duration as "HH:MM:SS", per §3.
func (d *MatchData) DurationString() string {
	total := int64(d.Duration.Seconds())
	h, m, s := total/3600, (total/60)%60, total%60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// addMoveData builds and appends one MoveData for the move us's handle just produced,
// following §4.6: a single-output-line search records only the bare move; otherwise the
// last info line's metrics and the last scored info line's score are extracted. The record
// is appended to both the match's move list and the UCI move history used for subsequent
// `position` commands. PV verification is run separately by the driver.
func addMoveData(data *MatchData, history *[]string, p *Player, moveUCI string, elapsed time.Duration, legal bool) {
	output := p.Handle.Output()

	md := MoveData{Move: displayMove(moveUCI), TimeMS: elapsed.Milliseconds(), Legal: legal}

	if len(output) <= 1 {
		md.ScoreString = "+0.00"
		data.Moves = append(data.Moves, md)
		*history = append(*history, md.Move)
		return
	}

	lastInfo := ""
	for i := len(output) - 1; i >= 0; i-- {
		if fields := strings.Fields(output[i]); len(fields) > 0 && fields[0] == "info" {
			lastInfo = output[i]
			break
		}
	}
	info := ParseInfoLine(lastInfo)
	md.NPS = info.NPS
	md.HashFull = info.HashFull
	md.TBHits = info.TBHits
	md.Depth = info.Depth
	md.SelDepth = info.SelDepth
	md.Nodes = info.Nodes
	md.Score = p.Handle.LastScore()
	md.ScoreType = p.Handle.LastScoreType()
	md.ScoreString = FormatScoreString(md.Score, md.ScoreType)

	data.Moves = append(data.Moves, md)
	*history = append(*history, md.Move)
}

func displayMove(uci string) string {
	if uci == "" {
		return "<none>"
	}
	return uci
}
