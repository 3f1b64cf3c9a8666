package match_test

import (
	"testing"

	"github.com/herohde/gauntlet/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfoLine(t *testing.T) {
	line := "info depth 12 seldepth 18 nodes 123456 nps 500000 hashfull 420 tbhits 3 score cp -37 pv e2e4 e7e5"
	f := match.ParseInfoLine(line)

	assert.Equal(t, 12, f.Depth)
	assert.Equal(t, 18, f.SelDepth)
	assert.Equal(t, 123456, f.Nodes)
	assert.Equal(t, 500000, f.NPS)
	assert.Equal(t, 420, f.HashFull)
	assert.Equal(t, 3, f.TBHits)
	assert.Equal(t, match.ScoreCP, f.ScoreType)
	assert.Equal(t, -37, f.Score)
}

func TestParseInfoLine_MissingKeysDefaultToZero(t *testing.T) {
	f := match.ParseInfoLine("info string no metrics here")
	assert.Zero(t, f.Depth)
	assert.Equal(t, match.ScoreErr, f.ScoreType)
}

func TestParseInfoLine_LastScoreWins(t *testing.T) {
	f := match.ParseInfoLine("info score cp 10 score mate 3")
	assert.Equal(t, match.ScoreMate, f.ScoreType)
	assert.Equal(t, 3, f.Score)
}

func TestFormatScoreString(t *testing.T) {
	assert.Equal(t, "+1.23", match.FormatScoreString(123, match.ScoreCP))
	assert.Equal(t, "-0.50", match.FormatScoreString(-50, match.ScoreCP))
	assert.Equal(t, "+M7", match.FormatScoreString(7, match.ScoreMate))
	assert.Equal(t, "-M3", match.FormatScoreString(-3, match.ScoreMate))
	assert.Equal(t, "ERR", match.FormatScoreString(0, match.ScoreErr))
}

func TestScoreString_RoundTrip(t *testing.T) {
	cases := []struct {
		score     int
		scoreType match.ScoreType
	}{
		{123, match.ScoreCP},
		{-50, match.ScoreCP},
		{0, match.ScoreCP},
		{7, match.ScoreMate},
		{-3, match.ScoreMate},
		{0, match.ScoreErr},
	}
	for _, c := range cases {
		s := match.FormatScoreString(c.score, c.scoreType)
		score, scoreType, err := match.ParseScoreString(s)
		require.NoError(t, err)
		assert.Equal(t, c.scoreType, scoreType)
		if c.scoreType != match.ScoreErr {
			assert.Equal(t, c.score, score)
		}
	}
}
