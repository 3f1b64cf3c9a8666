// Package uciengine implements match.EngineHandle over a real UCI engine subprocess:
// spawn, line I/O with deadlines, and process teardown.
package uciengine

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/herohde/gauntlet/pkg/match"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const readyOKTimeout = 5 * time.Second

// Handle is a subprocess-backed match.EngineHandle.
type Handle struct {
	cfg match.EngineConfig
	cmd *exec.Cmd

	stdin *bufio.Writer

	lines chan string // scanned stdout lines
	dead  chan struct{}

	iox.AsyncCloser

	mu            sync.Mutex
	output        []string
	bestmove      string
	hasBestmove   bool
	lastScore     int
	lastScoreType match.ScoreType
	lastInfo      string
	trace         []string // full protocol log, flushed by WriteLog
}

// New spawns the engine at cfg.Path with cfg.Args, performs the "uci"/"uciok" handshake,
// and applies cfg.UCIOptions via setoption.
func New(ctx context.Context, cfg match.EngineConfig) (*Handle, error) {
	cmd := exec.CommandContext(ctx, cfg.Path, cfg.Args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe for %v: %w", cfg.Name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe for %v: %w", cfg.Name, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %v: %w", cfg.Name, err)
	}

	h := &Handle{
		cfg:         cfg,
		cmd:         cmd,
		stdin:       bufio.NewWriter(stdin),
		lines:       make(chan string, 4096),
		dead:        make(chan struct{}),
		AsyncCloser: iox.NewAsyncCloser(),
	}
	go h.scan(ctx, stdout)
	go h.awaitExit(ctx)

	h.writeLine(ctx, "uci")
	for {
		select {
		case line, ok := <-h.lines:
			if !ok {
				return nil, fmt.Errorf("engine %v exited during handshake", cfg.Name)
			}
			if fields := strings.Fields(line); len(fields) > 0 && fields[0] == "uciok" {
				goto handshakeDone
			}
		case <-h.dead:
			return nil, fmt.Errorf("engine %v died during handshake", cfg.Name)
		case <-time.After(10 * time.Second):
			return nil, fmt.Errorf("engine %v did not answer uci within 10s", cfg.Name)
		}
	}
handshakeDone:

	for name, value := range cfg.UCIOptions {
		h.writeLine(ctx, fmt.Sprintf("setoption name %v value %v", name, value))
	}

	return h, nil
}

func (h *Handle) scan(ctx context.Context, stdout interface {
	Read([]byte) (int, error)
}) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		logw.Debugf(ctx, "<< %v: %v", h.cfg.Name, line)
		select {
		case h.lines <- line:
		default:
			logw.Warningf(ctx, "%v: line channel full, dropping: %v", h.cfg.Name, line)
		}
	}
	close(h.lines)
}

func (h *Handle) awaitExit(ctx context.Context) {
	_ = h.cmd.Wait()
	close(h.dead)
	logw.Infof(ctx, "%v: process exited", h.cfg.Name)
}

func (h *Handle) writeLine(ctx context.Context, line string) bool {
	h.mu.Lock()
	h.trace = append(h.trace, ">> "+line)
	h.mu.Unlock()

	logw.Debugf(ctx, ">> %v: %v", h.cfg.Name, line)
	if _, err := h.stdin.WriteString(line + "\n"); err != nil {
		return false
	}
	return h.stdin.Flush() == nil
}

// RefreshUCI resets per-game protocol state.
func (h *Handle) RefreshUCI() bool {
	ctx := context.Background()
	if !h.writeLine(ctx, "ucinewgame") {
		return false
	}
	return h.IsReady()
}

// SetCPUs is a best-effort pin; this transport does not implement process affinity.
func (h *Handle) SetCPUs(cpus []int) {}

// IsReady sends isready and waits for readyok.
func (h *Handle) IsReady() bool {
	ctx := context.Background()
	if !h.writeLine(ctx, "isready") {
		return false
	}
	deadline := time.After(readyOKTimeout)
	for {
		select {
		case line, ok := <-h.lines:
			if !ok {
				return false
			}
			if strings.TrimSpace(line) == "readyok" {
				return true
			}
		case <-h.dead:
			return false
		case <-deadline:
			return false
		}
	}
}

// Position sends "position <start> moves ...".
func (h *Handle) Position(history []string, start string) bool {
	ctx := context.Background()

	cmd := "position " + startToken(start)
	if len(history) > 0 {
		cmd += " moves " + strings.Join(history, " ")
	}
	return h.writeLine(ctx, cmd)
}

func startToken(start string) string {
	if start == "startpos" {
		return "startpos"
	}
	return "fen " + start
}

// Go sends "go" with time, increment, and movestogo derived from both time controls.
func (h *Handle) Go(mine, theirs match.TimeControl, stm string) bool {
	ctx := context.Background()

	h.mu.Lock()
	h.output = nil
	h.bestmove = ""
	h.hasBestmove = false
	h.lastScore = 0
	h.lastScoreType = match.ScoreErr
	h.lastInfo = ""
	h.mu.Unlock()

	wtime, btime := mine, theirs
	if stm == "b" {
		wtime, btime = theirs, mine
	}

	cmd := fmt.Sprintf("go wtime %d btime %d winc %d binc %d",
		wtime.Base.Milliseconds(), btime.Base.Milliseconds(),
		wtime.Increment.Milliseconds(), btime.Increment.Milliseconds())
	if mine.MovesToGo > 0 {
		cmd += fmt.Sprintf(" movestogo %d", mine.MovesToGo)
	}
	return h.writeLine(ctx, cmd)
}

// ReadEngine reads lines until one contains token, the timeout elapses, or the process
// dies, recording every line into the search output buffer and tracking the last score
// and the bestmove line along the way.
func (h *Handle) ReadEngine(token string, timeout time.Duration) match.ReadStatus {
	deadline := time.After(timeout)
	for {
		select {
		case line, ok := <-h.lines:
			if !ok {
				return match.Err
			}
			h.recordLine(line)
			if strings.Contains(line, token) {
				return match.Ok
			}
		case <-h.dead:
			return match.Err
		case <-deadline:
			return match.TimedOut
		}
	}
}

func (h *Handle) recordLine(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.trace = append(h.trace, "<< "+line)
	h.output = append(h.output, line)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "bestmove":
		h.hasBestmove = true
		if len(fields) > 1 {
			h.bestmove = fields[1]
		} else {
			h.bestmove = ""
		}
	case "info":
		info := match.ParseInfoLine(line)
		if info.ScoreType != match.ScoreErr {
			h.lastScore = info.Score
			h.lastScoreType = info.ScoreType
			h.lastInfo = line
		}
	}
}

// WriteEngine is a fire-and-forget line send.
func (h *Handle) WriteEngine(line string) {
	h.writeLine(context.Background(), line)
}

func (h *Handle) Output() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.output...)
}

func (h *Handle) BestMove() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bestmove, h.hasBestmove
}

func (h *Handle) OutputIncludesBestMove() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hasBestmove
}

func (h *Handle) LastScore() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastScore
}

func (h *Handle) LastScoreType() match.ScoreType {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastScoreType
}

func (h *Handle) LastInfo() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastInfo
}

func (h *Handle) Config() match.EngineConfig {
	return h.cfg
}

// WriteLog flushes the internal protocol trace.
func (h *Handle) WriteLog() {
	h.mu.Lock()
	trace := h.trace
	h.trace = nil
	h.mu.Unlock()

	ctx := context.Background()
	for _, line := range trace {
		logw.Debugf(ctx, "%v: %v", h.cfg.Name, line)
	}
}

// Close terminates the engine process, sending "quit" first as a courtesy.
func (h *Handle) Close() {
	if h.AsyncCloser.IsClosed() {
		return
	}
	h.writeLine(context.Background(), "quit")
	select {
	case <-h.dead:
	case <-time.After(2 * time.Second):
		if h.cmd.Process != nil {
			_ = h.cmd.Process.Kill()
		}
	}
	h.AsyncCloser.Close()
}
