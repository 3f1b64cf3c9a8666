package match

import (
	"fmt"
	"strconv"
	"strings"
)

// InfoFields are the integer metrics extracted from an info line; missing keys default to
// zero, matching §4.6's "missing keys -> 0" rule.
type InfoFields struct {
	Depth, SelDepth, NPS, HashFull, TBHits, Nodes int
	ScoreType                                     ScoreType
	Score                                         int
}

// ParseInfoLine tokenises a whitespace-separated "info ..." line and extracts the
// recognised integer keys plus the last-seen score cp/mate pair (last occurrence wins).
// An info line with no score substring yields ScoreErr, 0, matching §4.1.
func ParseInfoLine(line string) InfoFields {
	var f InfoFields
	tokens := strings.Fields(line)

	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			f.Depth = intAt(tokens, i+1)
		case "seldepth":
			f.SelDepth = intAt(tokens, i+1)
		case "nps":
			f.NPS = intAt(tokens, i+1)
		case "hashfull":
			f.HashFull = intAt(tokens, i+1)
		case "tbhits":
			f.TBHits = intAt(tokens, i+1)
		case "nodes":
			f.Nodes = intAt(tokens, i+1)
		case "score":
			if i+2 < len(tokens) {
				switch tokens[i+1] {
				case "cp":
					f.ScoreType = ScoreCP
					f.Score = intAt(tokens, i+2)
				case "mate":
					f.ScoreType = ScoreMate
					f.Score = intAt(tokens, i+2)
				}
			}
		}
	}
	return f
}

func intAt(tokens []string, i int) int {
	if i >= len(tokens) {
		return 0
	}
	v, err := strconv.Atoi(tokens[i])
	if err != nil {
		return 0
	}
	return v
}

// FormatScoreString renders (score, scoreType) into the stable, byte-comparable format
// PGN tooling downstream depends on: "+1.23" / "-0.50" for centipawns, "+M7" / "-M3" for
// mate distance, "ERR" if scoreType is ScoreErr.
func FormatScoreString(score int, scoreType ScoreType) string {
	switch scoreType {
	case ScoreCP:
		sign := "+"
		abs := score
		if score < 0 {
			sign = "-"
			abs = -score
		}
		return fmt.Sprintf("%v%d.%02d", sign, abs/100, abs%100)
	case ScoreMate:
		if score > 0 {
			return fmt.Sprintf("+M%d", score)
		}
		return fmt.Sprintf("-M%d", -score)
	default:
		return "ERR"
	}
}

// ParseScoreString is the inverse of FormatScoreString, used to check the round-trip
// invariant in §8.7.
func ParseScoreString(s string) (int, ScoreType, error) {
	if s == "ERR" {
		return 0, ScoreErr, nil
	}
	if len(s) > 2 && (s[1] == 'M') {
		sign := 1
		if s[0] == '-' {
			sign = -1
		}
		v, err := strconv.Atoi(s[2:])
		if err != nil {
			return 0, ScoreErr, err
		}
		return sign * v, ScoreMate, nil
	}

	sign := 1
	body := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		body = s[1:]
	}
	parts := strings.SplitN(body, ".", 2)
	whole, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ScoreErr, err
	}
	frac := 0
	if len(parts) == 2 {
		frac, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, ScoreErr, err
		}
	}
	return sign * (whole*100 + frac), ScoreCP, nil
}
