package match

// Three independent filters updated once per ply after a move is applied (§4.8). Each is a
// small value whose Update/query methods are pure given its own history, so no tracker
// shares state with another.

// ResignTracker watches for one side's engine consistently reporting a lost position from
// its own perspective. "Onesided" fires as soon as the side about to resign has strung
// together enough qualifying plies; "twosided" additionally requires the other side to
// have shown the mirror-image streak (both engines agree), which needs an extra ply of
// history since the colors alternate.
type ResignTracker struct {
	opts    ResignAdjudicationOptions
	streak  [2]int // indexed by colorIndex: consecutive own scores at or below -threshold
	winning [2]int // indexed by colorIndex: consecutive own scores at or above +threshold
}

func NewResignTracker(opts ResignAdjudicationOptions) *ResignTracker {
	return &ResignTracker{opts: opts}
}

// Update records the score the side named by moverColor ("w"/"b") reported for its own
// position immediately after moving.
func (t *ResignTracker) Update(moverColor string, score int, scoreType ScoreType) {
	if !t.opts.Enabled {
		return
	}
	idx := colorIndex(moverColor)
	if scoreType == ScoreCP && score <= -t.opts.ScoreCPThreshold {
		t.streak[idx]++
	} else {
		t.streak[idx] = 0
	}
	if scoreType == ScoreCP && score >= t.opts.ScoreCPThreshold {
		t.winning[idx]++
	} else {
		t.winning[idx] = 0
	}
}

// Resignable reports whether moverColor's streak of bad self-assessments is long enough to
// adjudicate a resignation now.
func (t *ResignTracker) Resignable(moverColor string) bool {
	if !t.opts.Enabled {
		return false
	}
	idx := colorIndex(moverColor)
	if t.streak[idx] < t.opts.MoveCount {
		return false
	}
	if t.opts.TwoSided {
		other := 1 - idx
		if t.winning[other] < t.opts.MoveCount {
			return false
		}
	}
	return true
}

// DrawTracker watches for a long stretch of near-zero scores past a minimum move number.
type DrawTracker struct {
	opts DrawAdjudicationOptions
	run  int
}

func NewDrawTracker(opts DrawAdjudicationOptions) *DrawTracker {
	return &DrawTracker{opts: opts}
}

// Update records the score reported after a ply, along with a move number. The driver passes
// the post-move fullmove number minus one (as fast-chess does): for a Black ply that is the
// move number the ply was played at, for a White ply it is one less.
func (t *DrawTracker) Update(score int, moveNumber int, scoreType ScoreType, halfmoveClock int) {
	if !t.opts.Enabled {
		return
	}
	qualifies := scoreType == ScoreCP &&
		abs(score) <= t.opts.ScoreCPThreshold &&
		moveNumber >= t.opts.MinPly
	if qualifies {
		t.run++
	} else {
		t.run = 0
	}
}

// Adjudicatable reports whether the qualifying streak has reached the configured length.
func (t *DrawTracker) Adjudicatable() bool {
	return t.opts.Enabled && t.run >= t.opts.MoveCount
}

// MaxMovesTracker fires once the game's fullmove number reaches a configured limit.
type MaxMovesTracker struct {
	opts    MaxMovesOptions
	current int
}

func NewMaxMovesTracker(opts MaxMovesOptions) *MaxMovesTracker {
	return &MaxMovesTracker{opts: opts}
}

// Update records the current fullmove number; score/scoreType are accepted to match the
// driver's uniform tracker-update call but are not consulted.
func (t *MaxMovesTracker) Update(fullMoveNumber int, _ int, _ ScoreType) {
	t.current = fullMoveNumber
}

// MaxMovesReached reports whether the configured move limit has been hit.
func (t *MaxMovesTracker) MaxMovesReached() bool {
	return t.opts.Enabled && t.opts.Limit > 0 && t.current >= t.opts.Limit
}

func colorIndex(color string) int {
	if color == "b" {
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
