// gauntlet runs one match between two UCI engines and prints the resulting match record.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/herohde/gauntlet/pkg/boardadapter"
	"github.com/herohde/gauntlet/pkg/match"
	"github.com/herohde/gauntlet/pkg/uciengine"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	whitePath = flag.String("white", "", "Path to the engine that moves first from the starting position (White from the standard start)")
	whiteArgs = flag.String("white.args", "", "Space-separated arguments for the -white engine")
	blackPath = flag.String("black", "", "Path to the engine that moves second from the starting position (Black from the standard start)")
	blackArgs = flag.String("black.args", "", "Space-separated arguments for the -black engine")

	fen     = flag.String("fen", "", "Starting position, FEN or EPD (default to the standard start)")
	moves   = flag.String("moves", "", "Space-separated forced opening moves, in UCI notation")
	chess960 = flag.Bool("chess960", false, "Use Chess960 / Fischer Random UCI castling notation")

	baseTime  = flag.Duration("tc.base", 60*time.Second, "Base time per side")
	increment = flag.Duration("tc.inc", 0, "Increment per move")
	movestogo = flag.Int("tc.movestogo", 0, "Moves per time-control period (zero for the whole game)")
	graceMS   = flag.Int("tc.grace_ms", 100, "Grace period in milliseconds added to a player's remaining time")

	drawEnabled = flag.Bool("draw.enabled", false, "Enable draw adjudication")
	drawCP      = flag.Int("draw.score_cp", 10, "Draw adjudication |score| threshold, in centipawns")
	drawMoves   = flag.Int("draw.move_count", 8, "Consecutive qualifying plies required to adjudicate a draw")
	drawMinPly  = flag.Int("draw.min_ply", 40, "Earliest fullmove number draw adjudication may fire")

	resignEnabled  = flag.Bool("resign.enabled", false, "Enable resign adjudication")
	resignCP       = flag.Int("resign.score_cp", 700, "Resign adjudication score threshold, in centipawns")
	resignMoves    = flag.Int("resign.move_count", 4, "Consecutive qualifying plies required to adjudicate a resignation")
	resignTwoSided = flag.Bool("resign.two_sided", false, "Require both engines to agree before resigning")

	maxMovesEnabled = flag.Bool("maxmoves.enabled", false, "Enable the max-moves draw adjudication")
	maxMovesLimit   = flag.Int("maxmoves.limit", 200, "Fullmove number at which the match is drawn")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gauntlet -white <path> -black <path> [options]

GAUNTLET runs one match between two UCI chess engines and prints the
resulting match record as JSON.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *whitePath == "" || *blackPath == "" {
		flag.Usage()
		logw.Exitf(ctx, "Both -white and -black must be set")
	}

	logw.Infof(ctx, "gauntlet %v", version)

	white, err := uciengine.New(ctx, match.EngineConfig{Name: "white", Path: *whitePath, Args: splitArgs(*whiteArgs)})
	if err != nil {
		logw.Exitf(ctx, "Failed to start white engine: %v", err)
	}
	defer white.Close()

	black, err := uciengine.New(ctx, match.EngineConfig{Name: "black", Path: *blackPath, Args: splitArgs(*blackArgs)})
	if err != nil {
		logw.Exitf(ctx, "Failed to start black engine: %v", err)
	}
	defer black.Close()

	opening := match.Opening{StartingPosition: startingPosition(*fen), PrefixMoves: splitArgs(*moves)}

	variant := match.Standard
	if *chess960 {
		variant = match.FRC
	}

	opts := match.TournamentOptions{
		Variant: variant,
		Draw: match.DrawAdjudicationOptions{
			Enabled: *drawEnabled, ScoreCPThreshold: *drawCP, MoveCount: *drawMoves, MinPly: *drawMinPly,
		},
		Resign: match.ResignAdjudicationOptions{
			Enabled: *resignEnabled, ScoreCPThreshold: *resignCP, MoveCount: *resignMoves, TwoSided: *resignTwoSided,
		},
		MaxMoves: match.MaxMovesOptions{Enabled: *maxMovesEnabled, Limit: *maxMovesLimit},
		TimeoutGraceMS: *graceMS,
	}

	tc := match.TimeControl{Base: *baseTime, Increment: *increment, MovesToGo: *movestogo}

	b := boardadapter.New()
	d := match.NewDriver(b, opts, match.NewStopSignal())

	data, err := d.Start(ctx, opening, white, black, tc, tc, nil)
	if err != nil {
		logw.Exitf(ctx, "Match failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		logw.Exitf(ctx, "Failed to encode match record: %v", err)
	}
}

func startingPosition(s string) string {
	if s == "" {
		return "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	}
	return s
}

func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Fields(s)
}
