package match_test

import (
	"time"

	"github.com/herohde/gauntlet/pkg/match"
)

// engineResponse is one scripted "bestmove" search result.
type engineResponse struct {
	bestmove    string
	hasBestmove bool
	score       int
	scoreType   match.ScoreType
	info        string
}

// fakeEngine is a scripted match.EngineHandle test double: every ReadEngine call consumes
// the next response in the script, with no subprocess or protocol I/O involved.
type fakeEngine struct {
	cfg       match.EngineConfig
	responses []engineResponse
	idx       int

	readyFails bool
	posFails   bool
	goFails    bool
	readStatus match.ReadStatus // zero value (Ok) unless a test overrides it

	lastBest  string
	hasBest   bool
	lastScore int
	lastType  match.ScoreType
	lastInfo  string
	output    []string
}

func newFakeEngine(name string, responses ...engineResponse) *fakeEngine {
	return &fakeEngine{cfg: match.EngineConfig{Name: name}, responses: responses}
}

func (e *fakeEngine) RefreshUCI() bool   { return !e.readyFails }
func (e *fakeEngine) SetCPUs(_ []int)    {}
func (e *fakeEngine) IsReady() bool      { return !e.readyFails }
func (e *fakeEngine) Position(_ []string, _ string) bool { return !e.posFails }
func (e *fakeEngine) Go(_, _ match.TimeControl, _ string) bool { return !e.goFails }

func (e *fakeEngine) ReadEngine(_ string, _ time.Duration) match.ReadStatus {
	if e.readStatus != match.Ok {
		return e.readStatus
	}
	if e.idx >= len(e.responses) {
		return match.TimedOut
	}
	r := e.responses[e.idx]
	e.idx++

	e.lastBest = r.bestmove
	e.hasBest = r.hasBestmove
	e.lastScore = r.score
	e.lastType = r.scoreType
	e.lastInfo = r.info
	if r.hasBestmove {
		e.output = []string{r.info, "bestmove " + r.bestmove}
	} else {
		e.output = []string{r.info}
	}
	return match.Ok
}

func (e *fakeEngine) WriteEngine(_ string) {}

func (e *fakeEngine) Output() []string             { return e.output }
func (e *fakeEngine) BestMove() (string, bool)      { return e.lastBest, e.hasBest }
func (e *fakeEngine) OutputIncludesBestMove() bool  { return e.hasBest }
func (e *fakeEngine) LastScore() int                { return e.lastScore }
func (e *fakeEngine) LastScoreType() match.ScoreType { return e.lastType }
func (e *fakeEngine) LastInfo() string              { return e.lastInfo }
func (e *fakeEngine) Config() match.EngineConfig    { return e.cfg }
func (e *fakeEngine) WriteLog()                     {}
