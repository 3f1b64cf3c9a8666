package match

import (
	"context"
	"fmt"
	"time"

	"github.com/seekerror/logw"
)

// Driver is the core state machine (C5): it alternately drives two engine subprocesses
// through one game from a starting position, maintaining per-side clocks, validating
// replies, detecting and classifying every terminal condition, and emitting a canonical
// match record. Not safe for concurrent use; one Driver plays one match.
type Driver struct {
	Board Board
	Opts  TournamentOptions
	Stop  StopSignal

	data    MatchData
	history []string

	draw   *DrawTracker
	resign *ResignTracker
	maxmvs *MaxMovesTracker
}

// NewDriver creates a driver for one match, wired to the given rules engine, tournament
// policy, and (optionally shared) stop signal.
func NewDriver(b Board, opts TournamentOptions, stop StopSignal) *Driver {
	return &Driver{Board: b, Opts: opts, Stop: stop}
}

// prepare implements §4.4.1: configures Chess960, loads the opening, and seeds the match
// record and uci move history with any forced prefix moves.
func (d *Driver) prepare(opening Opening) error {
	d.Board.SetChess960(d.Opts.Variant == FRC)

	if isFEN(opening.StartingPosition) {
		if err := d.Board.SetFEN(opening.StartingPosition); err != nil {
			return err
		}
	} else {
		if err := d.Board.SetEPD(opening.StartingPosition); err != nil {
			return err
		}
	}

	d.data = MatchData{StartFEN: d.Board.FEN()}
	d.history = nil

	for _, uci := range opening.PrefixMoves {
		d.data.Moves = append(d.data.Moves, MoveData{Move: uci, Legal: true, FromOpening: true})
		d.history = append(d.history, uci)
		if !d.Board.MakeMove(uci) {
			return fmt.Errorf("illegal opening move: %v", uci)
		}
	}

	d.draw = NewDrawTracker(d.Opts.Draw)
	d.resign = NewResignTracker(d.Opts.Resign)
	d.maxmvs = NewMaxMovesTracker(d.Opts.MaxMoves)

	return nil
}

// isFEN reports whether the opening string is FEN rather than EPD: EPD records carry
// ';'-delimited operations, FEN records never do (§4.3).
func isFEN(s string) bool {
	for _, r := range s {
		if r == ';' {
			return false
		}
	}
	return true
}

// Start implements §4.4.2: runs prepare, then alternates plies between the two engines
// until a terminal condition is reached, and returns the completed match record. white and
// black are each engine's own time control, by board color rather than by play order,
// since Chess960/prefix-move openings can hand the first move to either color.
func (d *Driver) Start(ctx context.Context, opening Opening, a, b EngineHandle, white, black TimeControl, cpus []int) (MatchData, error) {
	if err := d.prepare(opening); err != nil {
		return MatchData{}, err
	}

	firstColor := d.Board.SideToMove()
	secondColor, firstTC, secondTC := "b", white, black
	if firstColor == "b" {
		secondColor, firstTC, secondTC = "w", black, white
	}

	p1 := NewPlayer(a, firstColor, firstTC)
	p2 := NewPlayer(b, secondColor, secondTC)

	p1.Handle.RefreshUCI()
	p2.Handle.RefreshUCI()
	p1.Handle.SetCPUs(cpus)
	p2.Handle.SetCPUs(cpus)

	start := time.Now()

	func() {
		defer func() {
			if r := recover(); r != nil {
				logw.Errorf(ctx, "Match driver recovered from panic: %v", r)
			}
		}()

		for {
			if d.Stop.IsSet() {
				d.data.Termination = Interrupt
				return
			}
			if !d.playPly(ctx, p1, p2) {
				return
			}
			if d.Stop.IsSet() {
				d.data.Termination = Interrupt
				return
			}
			if !d.playPly(ctx, p2, p1) {
				return
			}
		}
	}()

	d.data.EndTime = time.Now()
	d.data.Duration = d.data.EndTime.Sub(start)
	d.data.Players = [2]PlayerInfo{
		{Config: p1.Config(), Result: p1.Result, Color: p1.Color},
		{Config: p2.Config(), Result: p2.Result, Color: p2.Color},
	}

	return d.data, nil
}

// playPly implements §4.4.3: one ply for us, against them. Returns true to continue the
// match, false if a terminal condition was reached.
func (d *Driver) playPly(ctx context.Context, us, them *Player) bool {
	name := us.Config().Name

	// Step 1: pre-ply rules check.
	reason, result := d.Board.IsGameOver()
	if result == Draw {
		us.Result, them.Result = Draw, Draw
	}
	if result == Lose {
		us.Result, them.Result = Lose, Win
	}
	if reason != NoReason {
		d.data.Reason = convertRulesReason(name, reason)
		d.data.Termination = Normal
		return false
	}

	// Step 2: liveness.
	if !us.Handle.IsReady() {
		d.disconnect(us, them)
		return false
	}

	// Step 3: send position.
	if !us.Handle.Position(d.history, d.startPosition()) {
		d.disconnect(us, them)
		return false
	}

	// Step 4: liveness again (protocol requires a readyok barrier before go).
	if !us.Handle.IsReady() {
		d.disconnect(us, them)
		return false
	}

	// Step 5: send go.
	if !us.Handle.Go(us.TimeControl(), them.TimeControl(), us.Color) {
		d.disconnect(us, them)
		return false
	}

	// Step 6: read bestmove with deadline = timeout threshold, and measure elapsed time.
	t0 := time.Now()
	status := us.Handle.ReadEngine("bestmove", us.TimeoutThreshold(d.Opts.TimeoutGraceMS))
	elapsed := time.Since(t0)
	us.Handle.WriteLog()

	// Step 7: failure after read.
	if status == Err || !us.Handle.IsReady() {
		d.disconnect(us, them)
		return false
	}

	// Step 8: global stop.
	if d.Stop.IsSet() {
		d.data.Termination = Interrupt
		return false
	}

	// Step 9: parse bestmove, check legality.
	bestmove, hasBestmove := us.Handle.BestMove()
	legal := hasBestmove && d.isLegal(bestmove)

	// Step 10: update the player's clock.
	timeout := !us.UpdateTime(elapsed)

	// Step 11: record the ply (also runs PV verification).
	addMoveData(&d.data, &d.history, us, move(bestmove, hasBestmove), elapsed, legal)
	verifyPVLines(ctx, d.Board, us.Handle.Output())

	// Step 12: terminal classification, in order.
	switch {
	case !hasBestmove && timeout:
		d.timeoutLoss(us, them)
		return false
	case !hasBestmove:
		d.illegalMove(us, them, "")
		return false
	case !legal:
		d.illegalMove(us, them, bestmove)
		return false
	case timeout:
		d.timeoutLoss(us, them)
		return false
	}

	// Step 13: apply the move and update trackers against the post-move board.
	d.Board.MakeMove(bestmove)

	d.draw.Update(us.Handle.LastScore(), d.Board.FullMoveNumber()-1, us.Handle.LastScoreType(), d.Board.HalfmoveClock())
	d.resign.Update(us.Color, us.Handle.LastScore(), us.Handle.LastScoreType())
	d.maxmvs.Update(d.Board.FullMoveNumber(), us.Handle.LastScore(), us.Handle.LastScoreType())

	// Step 14: run adjudication.
	return !d.adjudicate(us, them)
}

func move(bestmove string, hasBestmove bool) string {
	if !hasBestmove {
		return ""
	}
	return bestmove
}

func (d *Driver) isLegal(uci string) bool {
	if uci == "" {
		return false
	}
	return isLegalMove(d.Board, uci)
}

func (d *Driver) startPosition() string {
	if d.data.StartFEN == initialFENConst {
		return "startpos"
	}
	return d.data.StartFEN
}

const initialFENConst = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func (d *Driver) disconnect(loser, winner *Player) {
	loser.Result, winner.Result = Lose, Win
	d.data.CrashOrDisconnect = true
	d.data.Termination = Disconnect
	d.data.Reason = disconnectReason(loser.Config().Name)
}

func (d *Driver) timeoutLoss(loser, winner *Player) {
	loser.Result, winner.Result = Lose, Win
	d.data.Termination = Timeout
	d.data.Reason = timeoutReason(loser.Config().Name)

	// §4.4.4: drain the timed-out engine politely; its result is discarded.
	loser.Handle.WriteEngine("stop")
	if !loser.Handle.OutputIncludesBestMove() {
		loser.Handle.ReadEngine("bestmove", 10*time.Second)
	}
}

func (d *Driver) illegalMove(loser, winner *Player, uci string) {
	loser.Result, winner.Result = Lose, Win
	d.data.Termination = IllegalMove
	d.data.Reason = illegalMoveReason(loser.Config().Name, uci)
}

func (d *Driver) adjudicate(us, them *Player) bool {
	if d.Opts.Resign.Enabled && d.resign.Resignable(us.Color) && us.Handle.LastScore() < 0 {
		us.Result, them.Result = Lose, Win
		d.data.Termination = Adjudication
		d.data.Reason = adjudicationWinReason(them.Config().Name)
		return true
	}

	if d.Opts.Draw.Enabled && d.draw.Adjudicatable() {
		us.Result, them.Result = Draw, Draw
		d.data.Termination = Adjudication
		d.data.Reason = AdjudicationDrawMsg
		return true
	}

	if d.Opts.MaxMoves.Enabled && d.maxmvs.MaxMovesReached() {
		us.Result, them.Result = Draw, Draw
		d.data.Termination = Adjudication
		d.data.Reason = AdjudicationDrawMsg
		return true
	}

	return false
}
