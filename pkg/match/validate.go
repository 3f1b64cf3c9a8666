package match

import (
	"context"
	"regexp"
	"strings"

	"github.com/seekerror/logw"
)

var uciMoveRe = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][nbrq]?$`)

// verifyPVLines is a diagnostic-only check (§4.7): for every info line produced during the
// most recent search, walk its "pv" token list against a clone of the board and log a
// warning the first time a token names an illegal move. It never mutates the real board and
// never fails the match.
func verifyPVLines(ctx context.Context, b Board, lines []string) {
	for _, line := range lines {
		verifyPVLine(ctx, b, line)
	}
}

func verifyPVLine(ctx context.Context, b Board, line string) {
	tokens := strings.Fields(line)

	pvAt := -1
	for i, tok := range tokens {
		if tok == "pv" {
			pvAt = i
			break
		}
	}
	if pvAt < 0 {
		return // no pv token: nothing to verify
	}

	clone := b.Clone()
	for _, tok := range tokens[pvAt+1:] {
		if !uciMoveRe.MatchString(tok) {
			break // end of the pv move list
		}

		if !isLegalMove(clone, tok) {
			logw.Warningf(ctx, "Illegal pv move %v in info line: %v", tok, line)
			break // one warning per offending line
		}
		clone.MakeMove(tok)
	}
}

func isLegalMove(b Board, uci string) bool {
	for _, m := range b.LegalMoves() {
		if m == uci {
			return true
		}
	}
	return false
}
